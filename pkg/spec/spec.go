// Package spec defines the ISO8583 message specification: field types,
// data classes, encodings, padding rules, and the registry that overlays
// base, version, and network schemas.
package spec

// FieldDefaults defines default values for fields that a schema doesn't
// pin explicitly.
type FieldDefaults struct {
	Encoding EncodingType
	Padding  PaddingType
	PadChar  byte
}

// FieldDefinition defines the wire format for a single field number.
type FieldDefinition struct {
	Number      int
	Name        string
	Type        FieldType
	DataType    DataType
	Encoding    EncodingType
	MaxLength   int // characters for textual types, bytes for binary
	MinLength   int // variable-length fields only
	Padding     PaddingType
	PadChar     byte
	Description string
}

// WireWidth converts a logical length (characters for textual types,
// bytes for binary, per MaxLength/MinLength's own units) into the
// number of wire characters it occupies. Binary fields are carried as
// ASCII hex at the wire boundary (spec.md §6), so one logical byte
// takes two wire characters; every other data type is 1:1.
func (d FieldDefinition) WireWidth(logicalLen int) int {
	if d.DataType == DataTypeBinary {
		return logicalLen * 2
	}

	return logicalLen
}

// FieldType defines the length-prefix shape of a field: fixed-width, or
// variable-width with a 2- or 3-digit decimal length indicator.
//
// Design Note: FieldType is an enum rather than an interface. ISO 8583
// has exactly three length shapes and they never grow a fourth at
// runtime, so a switch on this enum (as in pkg/parser) is both simpler
// and faster than polymorphism would be.
type FieldType int

// FieldType enum values.
const (
	FieldTypeFixed  FieldType = iota // fixed-length field
	FieldTypeLLVAR                   // 2-digit decimal length prefix
	FieldTypeLLLVAR                  // 3-digit decimal length prefix
)

// String returns the string representation of FieldType.
func (ft FieldType) String() string {
	switch ft {
	case FieldTypeFixed:
		return "Fixed"
	case FieldTypeLLVAR:
		return "LLVAR"
	case FieldTypeLLLVAR:
		return "LLLVAR"
	default:
		return "UnknownFieldType"
	}
}

// LengthIndicatorDigits returns the number of decimal digits in the
// length prefix for variable-length fields, 0 for fixed fields.
func (ft FieldType) LengthIndicatorDigits() int {
	switch ft {
	case FieldTypeLLVAR:
		return 2
	case FieldTypeLLLVAR:
		return 3
	default:
		return 0
	}
}

// IsVariable returns true if the field type carries a length prefix.
func (ft FieldType) IsVariable() bool {
	return ft == FieldTypeLLVAR || ft == FieldTypeLLLVAR
}

// DataType defines the character class of a field's content.
type DataType int

// DataType enum values.
const (
	DataTypeNumeric             DataType = iota // n
	DataTypeAlpha                                // a
	DataTypeAlphanumeric                         // an
	DataTypeAlphaNumericSpecial                  // ans
	DataTypeBinary                               // b, hex-encoded on the wire
	DataTypeTrack2                               // z
)

// String returns the string representation of DataType.
func (dt DataType) String() string {
	switch dt {
	case DataTypeNumeric:
		return "Numeric"
	case DataTypeAlpha:
		return "Alpha"
	case DataTypeAlphanumeric:
		return "Alphanumeric"
	case DataTypeAlphaNumericSpecial:
		return "AlphaNumericSpecial"
	case DataTypeBinary:
		return "Binary"
	case DataTypeTrack2:
		return "Track2"
	default:
		return "UnknownDataType"
	}
}

// EncodingType defines the wire encoding used to carry a field's bytes.
// Every field definition in the base/version/network schemas shipped
// with this package uses EncodingASCII; EncodingBCD and EncodingEBCDIC
// remain available (see pkg/encoding) for network overlays that pack
// numeric fields or require EBCDIC-native transport.
type EncodingType int

// EncodingType enum values.
const (
	EncodingASCII EncodingType = iota
	EncodingBCD
	EncodingEBCDIC
)

// String returns the string representation of EncodingType.
func (et EncodingType) String() string {
	switch et {
	case EncodingASCII:
		return "ASCII"
	case EncodingBCD:
		return "BCD"
	case EncodingEBCDIC:
		return "EBCDIC"
	default:
		return "UnknownEncoding"
	}
}

// PaddingType defines how a fixed-length field is padded to MaxLength.
type PaddingType int

// PaddingType enum values.
const (
	PaddingNone PaddingType = iota
	PaddingLeft
	PaddingRight
)

// String returns the string representation of PaddingType.
func (pt PaddingType) String() string {
	switch pt {
	case PaddingNone:
		return "None"
	case PaddingLeft:
		return "Left"
	case PaddingRight:
		return "Right"
	default:
		return "UnknownPaddingType"
	}
}

// DefaultPadding returns the padding direction and character a field
// definition should use when it doesn't pin its own, per data type:
// numeric fields left-pad with '0', binary fields are never padded,
// everything else right-pads with ' '.
func DefaultPadding(dt DataType) (PaddingType, byte) {
	switch dt {
	case DataTypeNumeric:
		return PaddingLeft, '0'
	case DataTypeBinary:
		return PaddingNone, 0
	default:
		return PaddingRight, ' '
	}
}
