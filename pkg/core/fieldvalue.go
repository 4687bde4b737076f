package core

import "encoding/hex"

// FieldValue holds a decoded field's value. Exactly one of Text or
// Bytes is meaningful for a given value: Text for n/a/an/ans/z data,
// Bytes for b data. This mirrors the field codec's dispatch on
// spec.DataType rather than adding an interface on top of it.
type FieldValue struct {
	Text  string
	Bytes []byte
}

// TextValue constructs a FieldValue carrying character data.
func TextValue(s string) FieldValue {
	return FieldValue{Text: s}
}

// BinaryValue constructs a FieldValue carrying raw binary data.
func BinaryValue(b []byte) FieldValue {
	return FieldValue{Bytes: b}
}

// IsBinary reports whether the value carries binary data rather than text.
func (v FieldValue) IsBinary() bool {
	return v.Bytes != nil
}

// String renders the value for display: the text as-is, or binary
// data as lower-case hex.
func (v FieldValue) String() string {
	if v.IsBinary() {
		return hex.EncodeToString(v.Bytes)
	}

	return v.Text
}

// Len reports the value's natural length: character count for text,
// byte count for binary.
func (v FieldValue) Len() int {
	if v.IsBinary() {
		return len(v.Bytes)
	}

	return len(v.Text)
}

// Equal reports whether two FieldValues hold the same data.
func (v FieldValue) Equal(other FieldValue) bool {
	if v.IsBinary() != other.IsBinary() {
		return false
	}

	if v.IsBinary() {
		if len(v.Bytes) != len(other.Bytes) {
			return false
		}

		for i := range v.Bytes {
			if v.Bytes[i] != other.Bytes[i] {
				return false
			}
		}

		return true
	}

	return v.Text == other.Text
}
