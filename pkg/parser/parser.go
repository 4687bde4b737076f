package parser

import (
	"errors"
	"fmt"

	"github.com/mojave-labs/iso8583/pkg/spec"
)

var (
	ErrFieldNotDefined             = errors.New("field not defined in effective schema")
	ErrOffsetExceedsBufferLen      = errors.New("offset exceeds buffer length")
	ErrUnsupportedFieldType        = errors.New("unsupported field type in definition")
	ErrInsufficientLengthIndicator = errors.New("insufficient data for length indicator")
	ErrFieldLengthExceedsMax       = errors.New("field length exceeds max length")
	ErrInvalidDigit                = errors.New("invalid digit in length indicator")
)

// Parser is a stateless field-location calculator driven by a
// *spec.Registry. It never holds message state; every call computes
// a Cursor fresh from the buffer, the field number, and the offset
// the caller has already reached.
type Parser struct {
	registry *spec.Registry
	version  spec.Version
	network  spec.Network
}

// NewParser creates a stateless parser resolving field definitions
// from registry under the given version/network overlay.
func NewParser(registry *spec.Registry, version spec.Version, network spec.Network) *Parser {
	return &Parser{
		registry: registry,
		version:  version,
		network:  network,
	}
}

// ParseField calculates the cursor for fieldNum starting at offset in
// buf, consulting the registry for the field's shape (Fixed/LLVAR/
// LLLVAR) and MaxLength.
func (p *Parser) ParseField(buf []byte, fieldNum, offset int) (Cursor, error) {
	def, ok := p.registry.DefinitionOf(fieldNum, p.version, p.network)
	if !ok {
		return Cursor{}, fmt.Errorf("field %d: %w", fieldNum, ErrFieldNotDefined)
	}

	if offset >= len(buf) {
		return Cursor{}, fmt.Errorf(
			"field %d: %w (offset %d, buffer length %d)",
			fieldNum, ErrOffsetExceedsBufferLen, offset, len(buf),
		)
	}

	switch def.Type {
	case spec.FieldTypeFixed:
		return p.parseFixed(buf, def, offset)
	case spec.FieldTypeLLVAR, spec.FieldTypeLLLVAR:
		return p.parseVariable(buf, def, offset)
	default:
		return Cursor{}, fmt.Errorf("%w: %v", ErrUnsupportedFieldType, def.Type)
	}
}

// parseFixed parses a fixed-length field. def.MaxLength is in the
// field's logical unit (bytes for binary); WireWidth converts that to
// the number of wire characters actually consumed, since binary
// fields are hex-encoded ASCII at the wire boundary.
func (p *Parser) parseFixed(buf []byte, def spec.FieldDefinition, offset int) (Cursor, error) {
	width := def.WireWidth(def.MaxLength)

	if offset+width > len(buf) {
		return Cursor{}, fmt.Errorf(
			"field %d (%s): expected %d bytes for fixed field at offset %d, buffer has %d bytes: %w",
			def.Number, def.Name, width, offset, len(buf), ErrOffsetExceedsBufferLen)
	}

	return Cursor{
		Start: offset,
		End:   offset + width,
	}, nil
}

// parseVariable parses an LLVAR (2-digit) or LLLVAR (3-digit) field.
func (p *Parser) parseVariable(buf []byte, def spec.FieldDefinition, offset int) (Cursor, error) {
	lenDigits := def.Type.LengthIndicatorDigits()

	if offset+lenDigits > len(buf) {
		return Cursor{}, fmt.Errorf(
			"field %d (%s): expected %d bytes for length indicator at offset %d, buffer has %d bytes: %w",
			def.Number, def.Name, lenDigits, offset, len(buf), ErrInsufficientLengthIndicator)
	}

	lenBytes := buf[offset : offset+lenDigits]

	fieldLen, err := parseInt(lenBytes)
	if err != nil {
		return Cursor{}, fmt.Errorf("field %d (%s): invalid length indicator %q: %w",
			def.Number, def.Name, string(lenBytes), err)
	}

	if fieldLen > def.MaxLength {
		return Cursor{}, fmt.Errorf(
			"field %d (%s): length %d exceeds max length %d: %w",
			def.Number, def.Name, fieldLen, def.MaxLength, ErrFieldLengthExceedsMax)
	}

	// fieldLen is in the field's logical unit (bytes for binary); the
	// length prefix never counts wire characters directly for binary
	// fields, so WireWidth converts it to the hex-character span to read.
	width := def.WireWidth(fieldLen)

	dataStart := offset + lenDigits
	dataEnd := dataStart + width

	if dataEnd > len(buf) {
		return Cursor{}, fmt.Errorf(
			"field %d (%s): expected %d bytes of data at offset %d, buffer has %d bytes: %w",
			def.Number, def.Name, width, dataStart, len(buf), ErrOffsetExceedsBufferLen)
	}

	return Cursor{
		Start: dataStart,
		End:   dataEnd,
	}, nil
}

const decimalBase = 10

// parseInt parses a numeric byte slice into an integer.
func parseInt(b []byte) (int, error) {
	result := 0

	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDigit, c)
		}

		result = result*decimalBase + int(c-'0')
	}

	return result, nil
}
