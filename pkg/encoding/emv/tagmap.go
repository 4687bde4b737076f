// Package emv implements the BER-TLV sub-codec ISO8583 field 55 (ICC
// System Related Data) carries, on top of github.com/euicc-go/bertlv.
package emv

import (
	"fmt"

	"github.com/euicc-go/bertlv"
)

// Tag is an EMV BER-TLV tag rendered as upper-case hex, e.g. "9F26".
type Tag string

// entry pairs a tag with its raw value in encounter order.
type entry struct {
	Tag   Tag
	Value []byte
}

// TagMap is an ordered EMV tag/value map: an ordered slice of entries
// plus an index for O(1) keyed lookup. Order is preserved because EMV
// kernels (and auditors) care about the sequence tags were presented
// in, not just their values; a plain map would discard that.
type TagMap struct {
	entries []entry
	index   map[Tag]int
}

// NewTagMap returns an empty, ready-to-use TagMap.
func NewTagMap() *TagMap {
	return &TagMap{index: make(map[Tag]int)}
}

// Set adds or replaces the value for tag, preserving its original
// position in encounter order if it already existed.
func (m *TagMap) Set(tag Tag, value []byte) {
	if i, ok := m.index[tag]; ok {
		m.entries[i].Value = value

		return
	}

	m.index[tag] = len(m.entries)
	m.entries = append(m.entries, entry{Tag: tag, Value: value})
}

// Get returns the value for tag and whether it was present.
func (m *TagMap) Get(tag Tag) ([]byte, bool) {
	i, ok := m.index[tag]
	if !ok {
		return nil, false
	}

	return m.entries[i].Value, true
}

// Tags returns the tags in encounter order.
func (m *TagMap) Tags() []Tag {
	tags := make([]Tag, len(m.entries))
	for i, e := range m.entries {
		tags[i] = e.Tag
	}

	return tags
}

// Len returns the number of tags in the map.
func (m *TagMap) Len() int {
	return len(m.entries)
}

// InvalidTLV reports that field 55's BER-TLV payload couldn't be
// parsed: truncation, a malformed length octet, or a bad continuation
// byte in a multi-byte tag.
type InvalidTLV struct {
	Message string
	Cause   error
}

func (e *InvalidTLV) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid TLV: %s: %v", e.Message, e.Cause)
	}

	return fmt.Sprintf("invalid TLV: %s", e.Message)
}

func (e *InvalidTLV) Unwrap() error {
	return e.Cause
}

// Parse decodes a concatenated BER-TLV byte stream (as field 55 carries
// it) into an ordered TagMap, preserving encounter order.
func Parse(data []byte) (*TagMap, error) {
	m := NewTagMap()

	read := 0
	for read < len(data) {
		tlv := &bertlv.TLV{}

		if err := tlv.UnmarshalBinary(data[read:]); err != nil {
			return nil, &InvalidTLV{Message: fmt.Sprintf("offset %d", read), Cause: err}
		}

		encoded, err := tlv.MarshalBinary()
		if err != nil {
			return nil, &InvalidTLV{Message: fmt.Sprintf("re-marshal at offset %d", read), Cause: err}
		}

		m.Set(Tag(fmt.Sprintf("%X", tlv.Tag)), tlv.Value)
		read += len(encoded)
	}

	return m, nil
}

// Build encodes an ordered TagMap back into a concatenated BER-TLV
// byte stream, in the map's encounter order.
func Build(m *TagMap) ([]byte, error) {
	var out []byte

	for _, e := range m.entries {
		tag, err := parseTag(e.Tag)
		if err != nil {
			return nil, &InvalidTLV{Message: fmt.Sprintf("tag %s", e.Tag), Cause: err}
		}

		tlv := bertlv.NewValue(tag, e.Value)

		b, err := tlv.MarshalBinary()
		if err != nil {
			return nil, &InvalidTLV{Message: fmt.Sprintf("encode tag %s", e.Tag), Cause: err}
		}

		out = append(out, b...)
	}

	return out, nil
}

// parseTag decodes a hex tag string such as "9F26" into a bertlv.Tag by
// round-tripping it through the BER-TLV tag wire encoding rules:
// single byte unless the low 5 bits of the first byte are all set, in
// which case subsequent bytes continue while their high bit is set.
func parseTag(tag Tag) (bertlv.Tag, error) {
	raw, err := hexDecode(string(tag))
	if err != nil {
		return bertlv.Tag{}, err
	}

	var parsed bertlv.Tag
	if err := parsed.UnmarshalBinary(raw); err != nil {
		return bertlv.Tag{}, err
	}

	return parsed, nil
}

func hexDecode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("odd-length tag %q", s)
	}

	out := make([]byte, len(s)/2)

	for i := 0; i < len(out); i++ {
		hi, err := hexDigit(s[2*i])
		if err != nil {
			return nil, err
		}

		lo, err := hexDigit(s[2*i+1])
		if err != nil {
			return nil, err
		}

		out[i] = hi<<4 | lo
	}

	return out, nil
}

func hexDigit(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit %q", c)
	}
}
