package core

import (
	"fmt"

	"github.com/mojave-labs/iso8583/pkg/spec"
)

// Validator checks a Message and reports every Diagnostic it can
// find in a single pass. Unlike an error-returning check, a Validator
// never stops at the first problem.
type Validator interface {
	Validate(msg *Message, reg *spec.Registry) []Diagnostic
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(*Message, *spec.Registry) []Diagnostic

func (f ValidatorFunc) Validate(msg *Message, reg *spec.Registry) []Diagnostic {
	return f(msg, reg)
}

// CompositeValidator runs every validator in sequence and accumulates
// all of their diagnostics, rather than stopping at the first one.
type CompositeValidator struct {
	validators []Validator
}

// NewCompositeValidator combines validators into one.
func NewCompositeValidator(validators ...Validator) *CompositeValidator {
	return &CompositeValidator{validators: validators}
}

func (c *CompositeValidator) Validate(msg *Message, reg *spec.Registry) []Diagnostic {
	var all []Diagnostic

	for _, v := range c.validators {
		all = append(all, v.Validate(msg, reg)...)
	}

	return all
}

// DefaultValidator returns the composite of every check §4.7's check
// list names: MTI shape, bitmap/fields-map consistency, per-field
// character class, per-field length, PAN Luhn, and network
// required-field set.
func DefaultValidator() *CompositeValidator {
	return NewCompositeValidator(
		&MTIValidator{},
		&BitmapConsistencyValidator{},
		&FieldFormatValidator{},
		&LuhnValidator{Field: 2},
		&RequiredFieldsValidator{},
	)
}

// validMTIVersionDigits and validMTIClassDigits enumerate the first
// and second MTI digits §4.7 point 1 allows: the version digit is one
// of {0,1,2}; the message-class digit excludes 0 and 7.
var (
	validMTIVersionDigits = map[byte]bool{'0': true, '1': true, '2': true}
	validMTIClassDigits   = map[byte]bool{'1': true, '2': true, '3': true, '4': true, '5': true, '6': true, '8': true, '9': true}
)

// MTIValidator checks that the MTI is exactly 4 decimal digits whose
// version digit and message-class digit fall within the allowed sets.
type MTIValidator struct{}

func (v *MTIValidator) Validate(msg *Message, _ *spec.Registry) []Diagnostic {
	if len(msg.MTI) != 4 {
		return []Diagnostic{{Rule: "mti", Message: fmt.Sprintf("MTI must be 4 digits, got %q", msg.MTI)}}
	}

	for _, c := range msg.MTI {
		if c < '0' || c > '9' {
			return []Diagnostic{{Rule: "mti", Message: fmt.Sprintf("MTI must be decimal digits, got %q", msg.MTI)}}
		}
	}

	if !validMTIVersionDigits[msg.MTI[0]] {
		return []Diagnostic{{Rule: "mti", Message: fmt.Sprintf("MTI version digit %q is not one of 0,1,2", msg.MTI[0])}}
	}

	if !validMTIClassDigits[msg.MTI[1]] {
		return []Diagnostic{{Rule: "mti", Message: fmt.Sprintf("MTI message-class digit %q is not a valid class (0 and 7 are invalid)", msg.MTI[1])}}
	}

	return nil
}

// BitmapConsistencyValidator checks that the declared bitmap (when
// present) agrees exactly with the set of fields on the message.
type BitmapConsistencyValidator struct{}

func (v *BitmapConsistencyValidator) Validate(msg *Message, _ *spec.Registry) []Diagnostic {
	if msg.Bitmap == "" {
		return nil
	}

	bm, err := DecodeBitmapHex(msg.Bitmap)
	if err != nil {
		return []Diagnostic{{Rule: "bitmap", Message: err.Error()}}
	}

	var diags []Diagnostic

	present := make(map[int]bool)
	for _, f := range bm.PresentFields() {
		present[f] = true

		if !msg.HasField(f) {
			diags = append(diags, Diagnostic{Field: f, Rule: "bitmap", Message: "bit set in bitmap but field has no value"})
		}
	}

	for _, f := range msg.PresentFields() {
		if !present[f] {
			diags = append(diags, Diagnostic{Field: f, Rule: "bitmap", Message: "field has a value but its bit is not set in the bitmap"})
		}
	}

	return diags
}

// FieldFormatValidator checks every present field's character class
// and length against its effective FieldDefinition.
type FieldFormatValidator struct{}

func (v *FieldFormatValidator) Validate(msg *Message, reg *spec.Registry) []Diagnostic {
	var diags []Diagnostic

	for _, fn := range msg.PresentFields() {
		val := msg.Fields[fn]

		def, ok := reg.DefinitionOf(fn, msg.Version, msg.Network)
		if !ok {
			diags = append(diags, Diagnostic{Field: fn, Rule: "schema", Message: "field has no definition in the effective schema"})

			continue
		}

		diags = append(diags, checkLength(fn, def, val)...)
		diags = append(diags, checkCharClass(fn, def, val)...)
	}

	return diags
}

func checkLength(fieldNum int, def spec.FieldDefinition, val FieldValue) []Diagnostic {
	length := val.Len()

	if def.Type == spec.FieldTypeFixed {
		if length != def.MaxLength {
			return []Diagnostic{{
				Field: fieldNum, Rule: "length",
				Message: fmt.Sprintf("fixed field must be exactly %d characters, got %d", def.MaxLength, length),
			}}
		}

		return nil
	}

	minLen := def.MinLength
	if minLen == 0 {
		minLen = 1
	}

	if length < minLen || length > def.MaxLength {
		return []Diagnostic{{
			Field: fieldNum, Rule: "length",
			Message: fmt.Sprintf("length %d outside [%d,%d]", length, minLen, def.MaxLength),
		}}
	}

	return nil
}

func checkCharClass(fieldNum int, def spec.FieldDefinition, val FieldValue) []Diagnostic {
	if def.DataType == spec.DataTypeBinary {
		if !val.IsBinary() && !isEvenHex(val.Text) {
			return []Diagnostic{{Field: fieldNum, Rule: "char-class", Message: "binary field must be even-length hex"}}
		}

		return nil
	}

	if val.IsBinary() {
		return []Diagnostic{{Field: fieldNum, Rule: "char-class", Message: "non-binary field carries binary data"}}
	}

	var bad bool

	switch def.DataType {
	case spec.DataTypeNumeric:
		bad = !allMatch(val.Text, isDigit)
	case spec.DataTypeAlpha:
		// Space is the default right-pad character for a and an fields,
		// and decode keeps padding, so it is accepted in both classes.
		bad = !allMatch(val.Text, func(c byte) bool { return isAlpha(c) || c == ' ' })
	case spec.DataTypeAlphanumeric:
		bad = !allMatch(val.Text, func(c byte) bool { return isAlpha(c) || isDigit(c) || c == ' ' })
	case spec.DataTypeAlphaNumericSpecial:
		bad = !allMatch(val.Text, isPrintable)
	case spec.DataTypeTrack2:
		bad = !allMatch(val.Text, func(c byte) bool { return isDigit(c) || c == '=' || c == 'D' })
	}

	if bad {
		return []Diagnostic{{Field: fieldNum, Rule: "char-class", Message: fmt.Sprintf("value does not match %s character class", def.DataType)}}
	}

	return nil
}

func allMatch(s string, ok func(byte) bool) bool {
	for i := range len(s) {
		if !ok(s[i]) {
			return false
		}
	}

	return true
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool      { return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') }
func isPrintable(c byte) bool  { return c >= 0x20 && c < 0x7F }
func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

func isEvenHex(s string) bool {
	if len(s)%2 != 0 {
		return false
	}

	return allMatch(s, isHexDigit)
}

// LuhnValidator validates a PAN-carrying field against the Luhn
// checksum, skipping silently when the field is absent.
type LuhnValidator struct {
	Field int
}

func (v *LuhnValidator) Validate(msg *Message, _ *spec.Registry) []Diagnostic {
	val, ok := msg.Get(v.Field)
	if !ok {
		return nil
	}

	if !luhnCheck(val.Text) {
		return []Diagnostic{{Field: v.Field, Rule: "luhn", Message: "failed Luhn checksum"}}
	}

	return nil
}

// luhnCheck validates a digit string using the Luhn algorithm.
func luhnCheck(number string) bool {
	if number == "" {
		return false
	}

	var sum int

	parity := len(number) % 2

	for i := 0; i < len(number); i++ {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}

		d := int(c - '0')
		if i%2 == parity {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}

		sum += d
	}

	return sum%10 == 0
}

// RequiredFieldsValidator checks that every field the message's
// Network requires is present.
type RequiredFieldsValidator struct{}

func (v *RequiredFieldsValidator) Validate(msg *Message, reg *spec.Registry) []Diagnostic {
	var diags []Diagnostic

	for _, fn := range reg.RequiredFields(msg.Network) {
		if !msg.HasField(fn) {
			diags = append(diags, Diagnostic{Field: fn, Rule: "required", Message: fmt.Sprintf("field required for network %s is missing", msg.Network)})
		}
	}

	return diags
}
