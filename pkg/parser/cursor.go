package parser

// Cursor represents a zero-copy position of a field's data within the
// wire buffer. The parser is a standalone cursor-arithmetic package
// with no dependency on pkg/core, so pkg/codec can convert a parser.Cursor
// into a core.FieldValue without the parser needing to know about
// FieldValue at all.
type Cursor struct {
	Start int
	End   int
}

// Length returns the length of the data segment.
func (c Cursor) Length() int {
	return c.End - c.Start
}

// Extract returns the data segment from the buffer.
// Returns nil if the cursor is invalid or out of bounds.
func (c Cursor) Extract(buf []byte) []byte {
	if c.Start < 0 || c.End > len(buf) || c.Start > c.End {
		return nil
	}

	return buf[c.Start:c.End]
}

// NextOffset returns the offset where the next field should start.
// This is simply the End position of the current cursor.
func (c Cursor) NextOffset() int {
	return c.End
}
