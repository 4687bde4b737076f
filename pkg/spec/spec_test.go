package spec

import "testing"

func TestFieldType(t *testing.T) {
	tests := []struct {
		name       string
		fieldType  FieldType
		wantString string
		wantDigits int
		wantVar    bool
	}{
		{"Fixed", FieldTypeFixed, "Fixed", 0, false},
		{"LLVAR", FieldTypeLLVAR, "LLVAR", 2, true},
		{"LLLVAR", FieldTypeLLLVAR, "LLLVAR", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fieldType.String(); got != tt.wantString {
				t.Errorf("String() = %v, want %v", got, tt.wantString)
			}

			if got := tt.fieldType.LengthIndicatorDigits(); got != tt.wantDigits {
				t.Errorf("LengthIndicatorDigits() = %v, want %v", got, tt.wantDigits)
			}

			if got := tt.fieldType.IsVariable(); got != tt.wantVar {
				t.Errorf("IsVariable() = %v, want %v", got, tt.wantVar)
			}
		})
	}
}

func TestDataType(t *testing.T) {
	tests := []struct {
		name     string
		dataType DataType
		want     string
	}{
		{"Numeric", DataTypeNumeric, "Numeric"},
		{"Alpha", DataTypeAlpha, "Alpha"},
		{"Alphanumeric", DataTypeAlphanumeric, "Alphanumeric"},
		{"AlphaNumericSpecial", DataTypeAlphaNumericSpecial, "AlphaNumericSpecial"},
		{"Binary", DataTypeBinary, "Binary"},
		{"Track2", DataTypeTrack2, "Track2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dataType.String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodingType(t *testing.T) {
	tests := []struct {
		name     string
		encoding EncodingType
		want     string
	}{
		{"ASCII", EncodingASCII, "ASCII"},
		{"BCD", EncodingBCD, "BCD"},
		{"EBCDIC", EncodingEBCDIC, "EBCDIC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.encoding.String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaddingType(t *testing.T) {
	tests := []struct {
		name    string
		padding PaddingType
		want    string
	}{
		{"None", PaddingNone, "None"},
		{"Left", PaddingLeft, "Left"},
		{"Right", PaddingRight, "Right"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.padding.String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultPadding(t *testing.T) {
	tests := []struct {
		name     string
		dt       DataType
		wantPad  PaddingType
		wantChar byte
	}{
		{"Numeric left-pads zero", DataTypeNumeric, PaddingLeft, '0'},
		{"Binary is never padded", DataTypeBinary, PaddingNone, 0},
		{"Alpha right-pads space", DataTypeAlpha, PaddingRight, ' '},
		{"Alphanumeric right-pads space", DataTypeAlphanumeric, PaddingRight, ' '},
		{"AlphaNumericSpecial right-pads space", DataTypeAlphaNumericSpecial, PaddingRight, ' '},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotPad, gotChar := DefaultPadding(tt.dt)
			if gotPad != tt.wantPad {
				t.Errorf("padding = %v, want %v", gotPad, tt.wantPad)
			}

			if gotChar != tt.wantChar {
				t.Errorf("pad char = %v, want %v", gotChar, tt.wantChar)
			}
		})
	}
}

func TestFieldDefinition(t *testing.T) {
	def := FieldDefinition{
		Number:      2,
		Name:        "PrimaryAccountNumber",
		Type:        FieldTypeLLVAR,
		MaxLength:   19,
		DataType:    DataTypeNumeric,
		Encoding:    EncodingASCII,
		Description: "Primary Account Number",
	}

	if def.Number != 2 {
		t.Errorf("Number = %v, want 2", def.Number)
	}

	if def.Type != FieldTypeLLVAR {
		t.Errorf("Type = %v, want FieldTypeLLVAR", def.Type)
	}

	if def.DataType != DataTypeNumeric {
		t.Errorf("DataType = %v, want DataTypeNumeric", def.DataType)
	}
}
