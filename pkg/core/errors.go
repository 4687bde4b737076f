package core

import (
	"fmt"
)

// ParseErrorKind enumerates the ways parsing a message can fail. Parse
// fails fast: the first error it cannot continue past is the one it
// returns.
type ParseErrorKind string

// ParseError kinds.
const (
	KindTruncatedMTI    ParseErrorKind = "TruncatedMTI"
	KindInvalidMTI      ParseErrorKind = "InvalidMTI"
	KindInvalidBitmap   ParseErrorKind = "InvalidBitmap"
	KindInvalidLength   ParseErrorKind = "InvalidLength"
	KindUnknownField    ParseErrorKind = "UnknownField"
	KindInvalidCharType ParseErrorKind = "InvalidCharClass"
	KindTrailingGarbage ParseErrorKind = "TrailingGarbage"
)

// ParseError reports why Parse could not produce a Message. Field is 0
// when the failure isn't attributable to a single field (e.g. a
// truncated MTI or malformed bitmap).
type ParseError struct {
	Kind    ParseErrorKind
	Field   int
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	prefix := string(e.Kind)
	if e.Field != 0 {
		prefix = fmt.Sprintf("%s(field %d)", prefix, e.Field)
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ErrTruncatedMTI reports that the buffer is shorter than the 4 bytes
// an MTI requires.
func ErrTruncatedMTI(length int) error {
	return &ParseError{
		Kind:    KindTruncatedMTI,
		Message: fmt.Sprintf("message must have at least 4 bytes for MTI, got %d", length),
	}
}

// ErrInvalidMTI reports an MTI that isn't exactly four decimal digits,
// or whose version/class digit is out of range.
func ErrInvalidMTI(mti string) error {
	return &ParseError{
		Kind:    KindInvalidMTI,
		Message: fmt.Sprintf("MTI must be 4 decimal digits with a valid version and class, got %q", mti),
	}
}

// ErrInvalidBitmap reports non-hex bitmap input, a bitmap shorter than
// its declared length, or a message too short to hold the bitmap.
func ErrInvalidBitmap(reason string) error {
	return &ParseError{
		Kind:    KindInvalidBitmap,
		Message: reason,
	}
}

// ErrInvalidLength reports a malformed or out-of-bounds variable-length
// prefix, or a field body truncated before its declared length.
func ErrInvalidLength(field int, reason string) error {
	return &ParseError{
		Kind:    KindInvalidLength,
		Field:   field,
		Message: reason,
	}
}

// ErrUnknownField reports a bitmap bit set for a field number the
// effective schema doesn't define.
func ErrUnknownField(field int) error {
	return &ParseError{
		Kind:    KindUnknownField,
		Field:   field,
		Message: "field number has no definition in the effective schema",
	}
}

// ErrInvalidCharClass reports a field value whose bytes don't conform
// to its data type's character class.
func ErrInvalidCharClass(field int, reason string) error {
	return &ParseError{
		Kind:    KindInvalidCharType,
		Field:   field,
		Message: reason,
	}
}

// ErrTrailingGarbage reports bytes left over after the last present
// field was consumed.
func ErrTrailingGarbage(extra int) error {
	return &ParseError{
		Kind:    KindTrailingGarbage,
		Message: fmt.Sprintf("%d byte(s) remain after the last present field", extra),
	}
}

// ErrValueTooLong reports an encode whose value exceeds the field
// definition's maximum: the wire width for fixed fields, MaxLength for
// variable-length fields.
func ErrValueTooLong(field, length, maxLength int) error {
	return &ParseError{
		Kind:    KindInvalidLength,
		Field:   field,
		Message: fmt.Sprintf("value length %d exceeds max length %d", length, maxLength),
	}
}

// BuildError reports that Build refused to emit a message because
// Validate found one or more diagnostics. The builder never emits a
// known-invalid message.
type BuildError struct {
	Diagnostics []Diagnostic
}

func (e *BuildError) Error() string {
	if len(e.Diagnostics) == 1 {
		return fmt.Sprintf("build refused: %s", e.Diagnostics[0].String())
	}

	return fmt.Sprintf("build refused: %d validation diagnostics", len(e.Diagnostics))
}
