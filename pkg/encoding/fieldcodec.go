package encoding

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mojave-labs/iso8583/pkg/core"
	"github.com/mojave-labs/iso8583/pkg/spec"
)

// FieldCodec applies a FieldDefinition's padding and character-class
// rules on top of the low-level Encoder implementations in this
// package. It operates purely on already-length-delimited field
// bodies; pkg/parser and pkg/builder own the length-prefix/cursor
// arithmetic around it.
type FieldCodec struct{}

// NewFieldCodec returns a ready-to-use FieldCodec. It holds no state:
// every definition is supplied per call.
func NewFieldCodec() *FieldCodec {
	return &FieldCodec{}
}

// encoderFor returns the low-level Encoder a FieldDefinition's
// EncodingType selects. BINARY fields always decode/encode as hex at
// the wire boundary regardless of EncodingType, per spec.md §6.
func encoderFor(def spec.FieldDefinition) Encoder {
	if def.DataType == spec.DataTypeBinary {
		return Hex
	}

	switch def.Encoding {
	case spec.EncodingBCD:
		return BCD
	case spec.EncodingEBCDIC:
		return EBCDIC037
	default:
		return ASCII
	}
}

// Decode turns a field's raw wire bytes (already cursor-delimited by
// the parser) into a core.FieldValue. Padding is never stripped: the
// stored value is the exact wire substring for text fields.
func (c *FieldCodec) Decode(def spec.FieldDefinition, wire []byte) (core.FieldValue, error) {
	enc := encoderFor(def)

	decoded, n, err := enc.Decode(wire)
	if err != nil {
		return core.FieldValue{}, core.ErrInvalidCharClass(def.Number, fmt.Sprintf("%s decode failed: %v", enc.Name(), err))
	}

	if n != len(wire) {
		return core.FieldValue{}, core.ErrInvalidCharClass(def.Number, fmt.Sprintf("%s decode consumed %d of %d bytes", enc.Name(), n, len(wire)))
	}

	if def.DataType == spec.DataTypeBinary {
		return core.BinaryValue(decoded), nil
	}

	return core.TextValue(string(decoded)), nil
}

// Encode turns a core.FieldValue into wire bytes, applying fixed-width
// padding when def.Type is Fixed. Variable-length fields are not
// padded; the length prefix is the builder's responsibility.
func (c *FieldCodec) Encode(def spec.FieldDefinition, val core.FieldValue) ([]byte, error) {
	var body string

	if val.IsBinary() {
		if def.DataType != spec.DataTypeBinary {
			return nil, core.ErrInvalidCharClass(def.Number, "non-binary field given binary data")
		}

		body = strings.ToUpper(hex.EncodeToString(val.Bytes))
	} else {
		body = val.Text
	}

	logicalLen := val.Len()

	if def.Type == spec.FieldTypeFixed {
		padded, err := pad(def, body)
		if err != nil {
			return nil, err
		}

		body = padded
	} else if logicalLen > def.MaxLength {
		return nil, core.ErrValueTooLong(def.Number, logicalLen, def.MaxLength)
	}

	// BINARY fields are already rendered as their wire-hex string in
	// body above; running them through the Hex encoder a second time
	// here would hex-encode that hex string, doubling its length.
	if def.DataType == spec.DataTypeBinary {
		return []byte(body), nil
	}

	enc := encoderFor(def)

	out, err := enc.Encode([]byte(body))
	if err != nil {
		return nil, core.ErrInvalidCharClass(def.Number, fmt.Sprintf("%s encode failed: %v", enc.Name(), err))
	}

	return out, nil
}

// pad left- or right-pads body to its wire width per def.PadChar/
// Padding, or returns an error if body is already too long or padding
// direction is unset for a value that needs it. body is already in
// wire-character form (hex string for binary), so the comparison is
// against WireWidth(MaxLength), not MaxLength itself.
func pad(def spec.FieldDefinition, body string) (string, error) {
	width := def.WireWidth(def.MaxLength)

	if len(body) > width {
		return "", core.ErrValueTooLong(def.Number, len(body), width)
	}

	if len(body) == width {
		return body, nil
	}

	deficit := width - len(body)
	padding := strings.Repeat(string(def.PadChar), deficit)

	switch def.Padding {
	case spec.PaddingLeft:
		return padding + body, nil
	case spec.PaddingRight:
		return body + padding, nil
	default:
		return "", core.ErrInvalidLength(def.Number, fmt.Sprintf("value length %d is short of fixed length %d and no padding direction is defined", len(body), def.MaxLength))
	}
}
