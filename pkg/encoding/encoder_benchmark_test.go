package encoding

import (
	"testing"
)

var (
	asciiTestData  = []byte("4111111111111111TERM0001MERCHANT12345600")
	ebcdicTestData = []byte("4111111111111111TERM0001MERCHANT12345600")
	bcdTestData    = []byte("000000012345")
	hexTestData    = []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x23, 0x45, 0x67}
)

func BenchmarkEBCDICEncode(b *testing.B) {
	enc := ebcdic037Encoder{}
	for i := 0; i < b.N; i++ {
		_, err := enc.Encode(ebcdicTestData)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEBCDICDecode(b *testing.B) {
	enc := ebcdic037Encoder{}
	data, _ := enc.Encode(ebcdicTestData)
	for i := 0; i < b.N; i++ {
		_, _, err := enc.Decode(data)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBCDEncode(b *testing.B) {
	enc := &bcdEncoder{}
	for i := 0; i < b.N; i++ {
		_, err := enc.Encode(bcdTestData)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBCDDecode(b *testing.B) {
	enc := &bcdEncoder{}
	data, _ := enc.Encode(bcdTestData)
	for i := 0; i < b.N; i++ {
		_, _, err := enc.Decode(data)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHexEncode(b *testing.B) {
	enc := &hexEncoder{}
	for i := 0; i < b.N; i++ {
		_, err := enc.Encode(hexTestData)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHexDecode(b *testing.B) {
	enc := &hexEncoder{}
	data, _ := enc.Encode(hexTestData)
	for i := 0; i < b.N; i++ {
		_, _, err := enc.Decode(data)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkASCIIEncode(b *testing.B) {
	enc := &asciiEncoder{}
	for i := 0; i < b.N; i++ {
		_, err := enc.Encode(asciiTestData)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkASCIIDecode(b *testing.B) {
	enc := &asciiEncoder{}
	data, _ := enc.Encode(asciiTestData)
	for i := 0; i < b.N; i++ {
		_, _, err := enc.Decode(data)
		if err != nil {
			b.Fatal(err)
		}
	}
}
