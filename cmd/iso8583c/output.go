package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/mojave-labs/iso8583/pkg/core"
)

var (
	headerColor = color.New(color.Bold)
	ruleColor   = color.New(color.FgRed)
)

// messageJSON is the JSON shape parse emits and build consumes,
// field values rendered as plain strings (hex for binary fields, as
// FieldValue.String does).
type messageJSON struct {
	MTI     string            `json:"mti"`
	Network string            `json:"network,omitempty"`
	Bitmap  string            `json:"bitmap,omitempty"`
	Fields  map[string]string `json:"fields"`
}

func toMessageJSON(msg *core.Message) messageJSON {
	out := messageJSON{
		MTI:     msg.MTI,
		Network: string(msg.Network),
		Bitmap:  msg.Bitmap,
		Fields:  make(map[string]string, len(msg.Fields)),
	}

	for _, fn := range msg.PresentFields() {
		v, _ := msg.Get(fn)
		out.Fields[fmt.Sprintf("%d", fn)] = v.String()
	}

	return out
}

// writeMessage renders msg to w per format: "table", "json", or "raw"
// (raw being the same field list, one "num=value" line per field, no
// color or alignment — suited to piping into another tool).
func writeMessage(w io.Writer, msg *core.Message, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(toMessageJSON(msg))
	case "raw":
		fmt.Fprintf(w, "mti=%s\n", msg.MTI)

		for _, fn := range msg.PresentFields() {
			v, _ := msg.Get(fn)
			fmt.Fprintf(w, "%d=%s\n", fn, v.String())
		}

		return nil
	default:
		return writeTable(w, msg)
	}
}

func writeTable(w io.Writer, msg *core.Message) error {
	headerColor.Fprintf(w, "MTI      %-10s  NETWORK %s\n", msg.MTI, msg.Network)
	headerColor.Fprintf(w, "%-8s %s\n", "FIELD", "VALUE")

	for _, fn := range msg.PresentFields() {
		v, _ := msg.Get(fn)
		fmt.Fprintf(w, "%-8d %s\n", fn, v.String())
	}

	return nil
}

// writeDiagnostics renders Validate's findings, one per line, rule
// names in red so a scan of the output finds them quickly.
func writeDiagnostics(w io.Writer, diags []core.Diagnostic) {
	sorted := make([]core.Diagnostic, len(diags))
	copy(sorted, diags)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Field < sorted[j].Field })

	for _, d := range sorted {
		ruleColor.Fprintf(w, "[%s] ", d.Rule)

		if d.Field != 0 {
			fmt.Fprintf(w, "field %d: %s\n", d.Field, d.Message)
		} else {
			fmt.Fprintf(w, "%s\n", d.Message)
		}
	}
}
