package spec

// networkOverlays holds the sparse per-field overrides each card
// network applies on top of the base (and version-overlaid) schema.
// Most networks only tighten field 2 (PAN) to the lengths their own
// numbering plans actually issue; AMEX additionally uses a 4-digit
// authorization ID instead of the base 6-digit one.
var networkOverlays = map[Network]map[int]FieldDefinition{
	NetworkVisa: {
		2: {Number: 2, Name: "PAN", Type: FieldTypeLLVAR, DataType: DataTypeNumeric, MaxLength: 19, MinLength: 13, Description: "Primary Account Number (Visa)"},
	},
	NetworkMastercard: {
		2: {Number: 2, Name: "PAN", Type: FieldTypeLLVAR, DataType: DataTypeNumeric, MaxLength: 16, MinLength: 16, Description: "Primary Account Number (Mastercard)"},
	},
	NetworkAmex: {
		2:  {Number: 2, Name: "PAN", Type: FieldTypeLLVAR, DataType: DataTypeNumeric, MaxLength: 15, MinLength: 15, Description: "Primary Account Number (Amex)"},
		38: {Number: 38, Name: "AuthID", Type: FieldTypeFixed, DataType: DataTypeAlphanumeric, MaxLength: 4, Description: "Authorization Identification Response (Amex)"},
	},
	NetworkDiscover: {
		2: {Number: 2, Name: "PAN", Type: FieldTypeLLVAR, DataType: DataTypeNumeric, MaxLength: 19, MinLength: 16, Description: "Primary Account Number (Discover)"},
	},
	NetworkJCB: {
		2: {Number: 2, Name: "PAN", Type: FieldTypeLLVAR, DataType: DataTypeNumeric, MaxLength: 19, MinLength: 16, Description: "Primary Account Number (JCB)"},
	},
	NetworkUnionPay: {
		2: {Number: 2, Name: "PAN", Type: FieldTypeLLVAR, DataType: DataTypeNumeric, MaxLength: 19, MinLength: 16, Description: "Primary Account Number (UnionPay)"},
	},
}
