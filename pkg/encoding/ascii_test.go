package encoding

import (
	"bytes"
	"testing"
)

// ASCII carries the bulk of ISO8583 field bodies: PAN, STAN, RRN,
// terminal/merchant IDs, and processing codes are all plain ASCII
// digit/text bodies that pass straight through this encoder.

func TestASCII_EncodeDecode_PAN(t *testing.T) {
	pan := []byte("4111111111111111")

	enc, err := ASCII.Encode(pan)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if !bytes.Equal(enc, pan) {
		t.Errorf("Encode should be a no-op for a PAN: got %v, want %v", enc, pan)
	}

	dec, n, err := ASCII.Decode(enc)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if n != len(enc) {
		t.Errorf("Decode: n = %d, want %d", n, len(enc))
	}

	if !bytes.Equal(dec, pan) {
		t.Errorf("Decode should be a no-op for a PAN: got %v, want %v", dec, pan)
	}
}

func TestASCII_EncodeDecode_MerchantNameLocation(t *testing.T) {
	// Field 43: merchant name/location, a padded fixed-width ans body.
	body := []byte("MERCHANT123456  NEW YORK     US")

	enc, err := ASCII.Encode(body)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	dec, n, err := ASCII.Decode(enc)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if n != len(enc) || !bytes.Equal(dec, body) {
		t.Errorf("round trip mismatch: got %q, want %q", dec, body)
	}
}

func TestASCII_Encode_RejectsNonASCIITerminalID(t *testing.T) {
	// A terminal ID field carrying a stray high-bit byte (e.g. EBCDIC
	// mistakenly routed to the ASCII encoder) must be rejected.
	input := []byte{'T', 'E', 'R', 'M', 0x80, '1'}

	_, err := ASCII.Encode(input)
	if err == nil {
		t.Error("expected error for non-ASCII terminal ID byte, got nil")
	}
}

func TestASCII_Decode_RejectsNonASCII(t *testing.T) {
	input := []byte{'0', '0', 0xFF}

	_, n, err := ASCII.Decode(input)
	if err == nil {
		t.Error("expected error for non-ASCII wire bytes, got nil")
	}

	if n != 0 {
		t.Errorf("Decode: n = %d, want 0 for error", n)
	}
}

func TestASCII_Name(t *testing.T) {
	if ASCII.Name() != "ASCII" {
		t.Errorf("Name() = %q, want %q", ASCII.Name(), "ASCII")
	}
}
