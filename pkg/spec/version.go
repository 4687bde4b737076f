package spec

// Version identifies which ISO8583 revision a message's field
// definitions should be resolved against.
type Version string

// Supported versions.
const (
	VersionNone Version = ""
	V1987       Version = "1987"
	V1993       Version = "1993"
	V2003       Version = "2003"
)

// versionOverlays holds the sparse per-field overrides each revision
// applies on top of the base (1987) schema. V1987 has no overlay: it
// *is* the base schema.
var versionOverlays = map[Version]map[int]FieldDefinition{
	V1993: {
		24: {Number: 24, Name: "NII", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 3, Description: "Network International Identifier"},
	},
	V2003: {
		24: {Number: 24, Name: "NII", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 3, Description: "Network International Identifier"},
		22: {Number: 22, Name: "POSEntryMode", Type: FieldTypeFixed, DataType: DataTypeNumeric, MaxLength: 3, Description: "Point of Service Entry Mode (3-digit, 2003 revision)"},
	},
}
