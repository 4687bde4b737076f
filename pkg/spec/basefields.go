package spec

// baseFields is the ISO8583:1987 base schema: fields 2-128 (1 and 65 are
// bitmap continuation markers, never data fields, and are deliberately
// absent here). Grounded on the common field table shared by card
// network message sets: amounts, identifiers, POS context, and the
// private/reserved ranges used for additional data and chip data.
var baseFields = map[int]FieldDefinition{
	2:  {Number: 2, Name: "PAN", Type: FieldTypeLLVAR, DataType: DataTypeNumeric, MaxLength: 19, MinLength: 1, Description: "Primary Account Number"},
	3:  {Number: 3, Name: "ProcessingCode", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 6, Description: "Processing Code"},
	4:  {Number: 4, Name: "Amount", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 12, Description: "Amount, Transaction"},
	5:  {Number: 5, Name: "AmountSettlement", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 12, Description: "Amount, Settlement"},
	6:  {Number: 6, Name: "AmountCardholderBilling", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 12, Description: "Amount, Cardholder Billing"},
	7:  {Number: 7, Name: "TransmissionDateTime", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 10, Description: "Transmission Date and Time, MMDDhhmmss"},
	9:  {Number: 9, Name: "ConversionRateSettlement", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 8, Description: "Conversion Rate, Settlement"},
	10: {Number: 10, Name: "ConversionRateCardholder", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 8, Description: "Conversion Rate, Cardholder Billing"},
	11: {Number: 11, Name: "STAN", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 6, Description: "System Trace Audit Number"},
	12: {Number: 12, Name: "LocalTime", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 6, Description: "Time, Local Transaction, hhmmss"},
	13: {Number: 13, Name: "LocalDate", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 4, Description: "Date, Local Transaction, MMDD"},
	14: {Number: 14, Name: "Expiry", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 4, Description: "Date, Expiration, YYMM"},
	15: {Number: 15, Name: "SettlementDate", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 4, Description: "Date, Settlement"},
	18: {Number: 18, Name: "MerchantType", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 4, Description: "Merchant Type / MCC"},
	22: {Number: 22, Name: "POSEntryMode", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 3, Description: "Point of Service Entry Mode"},
	23: {Number: 23, Name: "PANSeq", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 3, Description: "Card Sequence Number"},
	24: {Number: 24, Name: "NII", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 3, Description: "Network International Identifier"},
	25: {Number: 25, Name: "POSCond", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 2, Description: "Point of Service Condition Code"},
	32: {Number: 32, Name: "AcqInstID", Type: FieldTypeLLVAR, DataType: DataTypeNumeric, MaxLength: 11, MinLength: 1, Description: "Acquiring Institution Identification Code"},
	35: {Number: 35, Name: "Track2", Type: FieldTypeLLVAR, DataType: DataTypeTrack2, MaxLength: 37, MinLength: 1, Description: "Track 2 Data"},
	37: {Number: 37, Name: "RRN", Type: FieldTypeFixed, DataType: DataTypeAlphanumeric, MaxLength: 12, Description: "Retrieval Reference Number"},
	38: {Number: 38, Name: "AuthID", Type: FieldTypeFixed, DataType: DataTypeAlphanumeric, MaxLength: 6, Description: "Authorization Identification Response"},
	39: {Number: 39, Name: "RespCode", Type: FieldTypeFixed, DataType: DataTypeAlphanumeric, MaxLength: 2, Description: "Response Code"},
	41: {Number: 41, Name: "TermID", Type: FieldTypeFixed, DataType: DataTypeAlphanumeric, MaxLength: 8, Description: "Card Acceptor Terminal Identification"},
	42: {Number: 42, Name: "MerchID", Type: FieldTypeFixed, DataType: DataTypeAlphanumeric, MaxLength: 15, Description: "Card Acceptor Identification Code"},
	43: {Number: 43, Name: "MerchLoc", Type: FieldTypeFixed, DataType: DataTypeAlphaNumericSpecial, MaxLength: 40, Description: "Card Acceptor Name/Location"},
	48: {Number: 48, Name: "AddlDataPrivate", Type: FieldTypeLLLVAR, DataType: DataTypeAlphaNumericSpecial, MaxLength: 999, Description: "Additional Data, Private"},
	49: {Number: 49, Name: "Currency", Type: FieldTypeFixed, DataType: DataTypeAlphanumeric, MaxLength: 3, Description: "Currency Code, Transaction"},
	52: {Number: 52, Name: "PINBlock", Type: FieldTypeFixed, DataType: DataTypeBinary, MaxLength: 8, Description: "PIN Data (opaque to this codec)"},
	53: {Number: 53, Name: "SecCtrl", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 16, Description: "Security Related Control Information"},
	54: {Number: 54, Name: "AddlAmounts", Type: FieldTypeLLLVAR, DataType: DataTypeAlphaNumericSpecial, MaxLength: 120, Description: "Additional Amounts"},
	55: {Number: 55, Name: "ICCData", Type: FieldTypeLLLVAR, DataType: DataTypeBinary, MaxLength: 999, Description: "ICC System Related Data (EMV TLV)"},
	58: {Number: 58, Name: "AuthAgentData", Type: FieldTypeLLLVAR, DataType: DataTypeAlphaNumericSpecial, MaxLength: 999, Description: "Authorizing Agent Institution ID Code and Name"},
	60: {Number: 60, Name: "AdviceReasonPrivate", Type: FieldTypeLLLVAR, DataType: DataTypeAlphaNumericSpecial, MaxLength: 999, Description: "Advice/Reason Code, Private"},
	61: {Number: 61, Name: "POSExt", Type: FieldTypeLLLVAR, DataType: DataTypeAlphaNumericSpecial, MaxLength: 999, Description: "Point of Service Data, Private"},
	62: {Number: 62, Name: "Private62", Type: FieldTypeLLLVAR, DataType: DataTypeAlphaNumericSpecial, MaxLength: 999, Description: "Reserved Private"},
	63: {Number: 63, Name: "Private63", Type: FieldTypeLLLVAR, DataType: DataTypeAlphaNumericSpecial, MaxLength: 999, Description: "Reserved Private"},
	70: {Number: 70, Name: "NetworkMgmtCode", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 3, Description: "Network Management Information Code"},
	90: {Number: 90, Name: "OriginalDataElements", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 42, Description: "Original Data Elements"},
	95: {Number: 95, Name: "ReplacementAmounts", Type: FieldTypeFixed, DataType: DataTypeAlphanumeric, MaxLength: 42, Description: "Replacement Amounts"},
	100: {Number: 100, Name: "ReceivingInstID", Type: FieldTypeLLVAR, DataType: DataTypeNumeric, MaxLength: 11, MinLength: 1, Description: "Receiving Institution Identification Code"},
	102: {Number: 102, Name: "AccountID1", Type: FieldTypeLLVAR, DataType: DataTypeAlphaNumericSpecial, MaxLength: 28, MinLength: 1, Description: "Account Identification 1"},
	103: {Number: 103, Name: "AccountID2", Type: FieldTypeLLVAR, DataType: DataTypeAlphaNumericSpecial, MaxLength: 28, MinLength: 1, Description: "Account Identification 2"},
	128: {Number: 128, Name: "MAC2", Type: FieldTypeFixed, DataType: DataTypeBinary, MaxLength: 8, Description: "Message Authentication Code Field (opaque to this codec)"},
}

func init() {
	for n, def := range baseFields {
		if def.Padding == PaddingNone && def.PadChar == 0 && def.DataType != DataTypeBinary {
			pad, ch := DefaultPadding(def.DataType)
			def.Padding = pad
			def.PadChar = ch
			baseFields[n] = def
		}
	}
}
