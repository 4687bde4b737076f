package core

import "fmt"

// Diagnostic reports one validation finding. Validate never stops at
// the first problem; it returns every Diagnostic it can find in a
// single pass so a caller sees the whole picture at once.
type Diagnostic struct {
	Field   int    // 0 when the finding isn't attributable to one field (e.g. MTI shape)
	Rule    string // short rule name: "mti", "bitmap", "char-class", "length", "luhn", "required", "schema"
	Message string
}

func (d Diagnostic) String() string {
	if d.Field != 0 {
		return fmt.Sprintf("[%s] field %d: %s", d.Rule, d.Field, d.Message)
	}

	return fmt.Sprintf("[%s] %s", d.Rule, d.Message)
}
