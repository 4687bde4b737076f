package core

import (
	"sort"
	"strconv"

	"github.com/mojave-labs/iso8583/pkg/encoding/emv"
	"github.com/mojave-labs/iso8583/pkg/spec"
)

// Message represents an ISO8583 message, whether freshly parsed off
// the wire or under construction by a builder. Unlike the zero-copy
// cursor model this package used to offer, fields are materialized
// eagerly into FieldValue: the data model spec.md defines is a plain
// value, not a lazily-decoded accessor, so the type follows that.
type Message struct {
	MTI     string
	Fields  map[int]FieldValue
	Bitmap  string // hex, upper-case, as parsed or as last derived by a builder
	Network spec.Network
	Version spec.Version
	EMV     *emv.TagMap // nil when field 55 is absent
	Raw     []byte      // empty for programmatically-built messages
}

// NewMessage returns an empty Message with the given MTI and no fields set.
func NewMessage(mti string) *Message {
	return &Message{
		MTI:    mti,
		Fields: make(map[int]FieldValue),
	}
}

// HasField reports whether fieldNum is present.
func (m *Message) HasField(fieldNum int) bool {
	_, ok := m.Fields[fieldNum]

	return ok
}

// Get returns the FieldValue for fieldNum and whether it is present.
func (m *Message) Get(fieldNum int) (FieldValue, bool) {
	v, ok := m.Fields[fieldNum]

	return v, ok
}

// Set stores value under fieldNum.
func (m *Message) Set(fieldNum int, value FieldValue) {
	m.Fields[fieldNum] = value
}

// Unset removes fieldNum.
func (m *Message) Unset(fieldNum int) {
	delete(m.Fields, fieldNum)
}

// String returns the field's display form (FieldValue.String: the text
// as-is, or lower-case hex for binary data), or "" if absent.
func (m *Message) String(fieldNum int) string {
	v, ok := m.Fields[fieldNum]
	if !ok {
		return ""
	}

	return v.String()
}

// Int returns the field's text value parsed as an int, or 0 if absent
// or not numeric.
func (m *Message) Int(fieldNum int) int {
	v, ok := m.Fields[fieldNum]
	if !ok || v.IsBinary() {
		return 0
	}

	n, err := strconv.Atoi(v.Text)
	if err != nil {
		return 0
	}

	return n
}

// PresentFields returns the present field numbers in ascending order.
func (m *Message) PresentFields() []int {
	fields := make([]int, 0, len(m.Fields))
	for n := range m.Fields {
		fields = append(fields, n)
	}

	sort.Ints(fields)

	return fields
}
