package encoding

import (
	"bytes"
	"testing"

	"github.com/mojave-labs/iso8583/pkg/core"
	"github.com/mojave-labs/iso8583/pkg/spec"
)

func TestFieldCodecNumericFixedRoundTrip(t *testing.T) {
	def := spec.FieldDefinition{Number: 3, Type: spec.FieldTypeFixed, DataType: spec.DataTypeNumeric, MaxLength: 6, Padding: spec.PaddingLeft, PadChar: '0'}
	c := NewFieldCodec()

	wire, err := c.Encode(def, core.TextValue("12"))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if string(wire) != "000012" {
		t.Errorf("Encode = %q, want %q", wire, "000012")
	}

	val, err := c.Decode(def, wire)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if val.Text != "000012" {
		t.Errorf("Decode = %q, want %q (padding is never stripped)", val.Text, "000012")
	}
}

func TestFieldCodecAlphaFixedRightPads(t *testing.T) {
	def := spec.FieldDefinition{Number: 42, Type: spec.FieldTypeFixed, DataType: spec.DataTypeAlphanumeric, MaxLength: 15, Padding: spec.PaddingRight, PadChar: ' '}
	c := NewFieldCodec()

	wire, err := c.Encode(def, core.TextValue("MERCHANT123456"))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if len(wire) != 15 || wire[14] != ' ' {
		t.Errorf("Encode = %q, want 15 bytes right-padded with a space", wire)
	}
}

// TestFieldCodecBinaryFixedRoundTrip exercises a binary fixed field
// (field 52-shaped: MaxLength in bytes) whose wire form is ASCII hex,
// i.e. twice as many wire characters as MaxLength.
func TestFieldCodecBinaryFixedRoundTrip(t *testing.T) {
	def := spec.FieldDefinition{Number: 52, Type: spec.FieldTypeFixed, DataType: spec.DataTypeBinary, MaxLength: 4}
	c := NewFieldCodec()
	raw := []byte{0xDE, 0xAD, 0xBE, 0xEF}

	wire, err := c.Encode(def, core.BinaryValue(raw))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if len(wire) != 8 {
		t.Fatalf("Encode produced %d wire bytes, want 8 (2x MaxLength for hex)", len(wire))
	}

	if string(wire) != "DEADBEEF" {
		t.Errorf("Encode = %q, want %q", wire, "DEADBEEF")
	}

	val, err := c.Decode(def, wire)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if !val.IsBinary() || !bytes.Equal(val.Bytes, raw) {
		t.Errorf("Decode = %v, want %v", val.Bytes, raw)
	}
}

func TestFieldCodecBinaryFixedWrongLengthRejected(t *testing.T) {
	def := spec.FieldDefinition{Number: 52, Type: spec.FieldTypeFixed, DataType: spec.DataTypeBinary, MaxLength: 4}
	c := NewFieldCodec()

	if _, err := c.Encode(def, core.BinaryValue([]byte{0x01, 0x02})); err == nil {
		t.Error("expected an error encoding a short binary value into a fixed field (no padding allowed)")
	}
}

func TestFieldCodecVariableRejectsTooLong(t *testing.T) {
	def := spec.FieldDefinition{Number: 2, Type: spec.FieldTypeLLVAR, DataType: spec.DataTypeNumeric, MaxLength: 19, MinLength: 1}
	c := NewFieldCodec()

	_, err := c.Encode(def, core.TextValue("111111111111111111111"))
	if err == nil {
		t.Error("expected ValueTooLong for a value exceeding MaxLength")
	}
}

// TestFieldCodecBinaryVariableUsesLogicalLength exercises a
// binary LLLVAR field (field 55-shaped): a 300-byte payload hex-
// encodes to 600 wire characters but must be accepted since the
// logical length (bytes) stays under MaxLength.
func TestFieldCodecBinaryVariableUsesLogicalLength(t *testing.T) {
	def := spec.FieldDefinition{Number: 55, Type: spec.FieldTypeLLLVAR, DataType: spec.DataTypeBinary, MaxLength: 999}
	c := NewFieldCodec()

	raw := bytes.Repeat([]byte{0xAB}, 300)

	wire, err := c.Encode(def, core.BinaryValue(raw))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if len(wire) != 600 {
		t.Fatalf("Encode produced %d wire bytes, want 600", len(wire))
	}
}
