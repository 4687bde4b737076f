// Package codec exposes the five public operations spec.md §6 names:
// Parse, Build, Validate, ParseEMV, BuildEMV. It composes pkg/spec,
// pkg/core, pkg/parser, pkg/encoding, and pkg/builder; callers outside
// this module import only this package and pkg/core's types.
package codec

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mojave-labs/iso8583/internal/pool"
	"github.com/mojave-labs/iso8583/pkg/builder"
	"github.com/mojave-labs/iso8583/pkg/core"
	"github.com/mojave-labs/iso8583/pkg/encoding"
	"github.com/mojave-labs/iso8583/pkg/encoding/emv"
	"github.com/mojave-labs/iso8583/pkg/parser"
	"github.com/mojave-labs/iso8583/pkg/spec"
)

const mtiLength = 4

// Codec is the entry point for the five public operations. It holds
// only the immutable schema registry; Parse/Build/Validate calls do
// not suspend and are safe to run concurrently across goroutines
// sharing one Codec (spec.md §5).
type Codec struct {
	Registry *spec.Registry
	field    *encoding.FieldCodec
}

// New returns a ready-to-use Codec with a fresh schema registry.
func New() *Codec {
	return &Codec{Registry: spec.NewRegistry(), field: encoding.NewFieldCodec()}
}

// Parse implements spec.md §4.5's six-step protocol: MTI, primary (and
// optional secondary) bitmap, per-field decode in ascending order,
// network detection from field 2 when network isn't supplied, and
// field 55 routed to the TLV codec. Parse never mutates data and is
// not restartable: the first error it hits is the one it returns.
func (c *Codec) Parse(data []byte, network spec.Network, version spec.Version) (*core.Message, error) {
	msg := &core.Message{Fields: make(map[int]core.FieldValue)}

	return msg, c.parseInto(msg, data, network, version)
}

// ParsePooled behaves like Parse but decodes into a message acquired
// from p rather than allocating a fresh one, for callers parsing at a
// rate where message-per-call allocation shows up in profiling. The
// caller owns the returned message and must eventually call
// p.Release on it; ParsePooled itself never releases a message it
// hands back, including on error, since the partially-filled message
// may still be worth inspecting.
func (c *Codec) ParsePooled(data []byte, network spec.Network, version spec.Version, p *pool.MessagePool) (*core.Message, error) {
	msg := p.Acquire()

	return msg, c.parseInto(msg, data, network, version)
}

// parseInto implements spec.md §4.5's six-step protocol onto an
// already-allocated message: MTI, primary (and optional secondary)
// bitmap, per-field decode in ascending order, network detection from
// field 2 when network isn't supplied, and field 55 routed to the TLV
// codec. parseInto never mutates data and is not restartable: the
// first error it hits is the one it returns.
func (c *Codec) parseInto(msg *core.Message, data []byte, network spec.Network, version spec.Version) error {
	if len(data) < mtiLength {
		return core.ErrTruncatedMTI(len(data))
	}

	mti := string(data[:mtiLength])
	if !isDecimal(mti) {
		return core.ErrInvalidMTI(mti)
	}

	offset := mtiLength

	bm, bitmapHex, consumed, err := decodeBitmapAt(data, offset)
	if err != nil {
		return err
	}

	offset += consumed

	msg.MTI = mti
	msg.Bitmap = bitmapHex
	msg.Network = network
	msg.Version = version
	msg.Raw = data

	p := parser.NewParser(c.Registry, version, network)

	for _, fieldNum := range bm.PresentFields() {
		def, ok := c.Registry.DefinitionOf(fieldNum, version, network)
		if !ok {
			return core.ErrUnknownField(fieldNum)
		}

		cur, err := p.ParseField(data, fieldNum, offset)
		if err != nil {
			return toParseError(fieldNum, err)
		}

		wire := cur.Extract(data)

		// LLVAR/LLLVAR fields carry their length prefix ahead of cur.Start;
		// the cursor itself spans only the payload, so offset tracking
		// below uses cur.End directly regardless of field shape.
		val, err := c.field.Decode(def, wire)
		if err != nil {
			return err
		}

		msg.Set(fieldNum, val)
		offset = cur.End
	}

	if offset != len(data) {
		return core.ErrTrailingGarbage(len(data) - offset)
	}

	if msg.Network == spec.NetworkNone {
		if pan, ok := msg.Get(2); ok && !pan.IsBinary() {
			msg.Network = c.Registry.DetectNetwork(pan.Text)
		}
	}

	if iccData, ok := msg.Get(55); ok && iccData.IsBinary() {
		tags, err := emv.Parse(iccData.Bytes)
		if err != nil {
			return err
		}

		msg.EMV = tags
	}

	return nil
}

// Build implements spec.md §4.6: validate the draft, then encode
// fields in ascending order, derive the bitmap, and concatenate MTI +
// bitmap + field bodies. Build refuses to emit a message Validate
// finds any diagnostic for.
func (c *Codec) Build(msg *core.Message) ([]byte, error) {
	return builder.FromMessage(c.Registry, msg).BuildBytes()
}

// Validate runs every check spec.md §4.7 names and returns every
// diagnostic found, never stopping at the first one.
func (c *Codec) Validate(msg *core.Message) []core.Diagnostic {
	return core.DefaultValidator().Validate(msg, c.Registry)
}

// ParseEMV decodes a hex string carrying field 55's BER-TLV payload
// into an ordered tag/value map, preserving encounter order.
func (c *Codec) ParseEMV(hexStr string) (*emv.TagMap, error) {
	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		return nil, &emv.InvalidTLV{Message: "not valid hex", Cause: err}
	}

	return emv.Parse(raw)
}

// BuildEMV encodes an ordered tag/value map back into a hex string, in
// the map's encounter order.
func (c *Codec) BuildEMV(tags *emv.TagMap) (string, error) {
	raw, err := emv.Build(tags)
	if err != nil {
		return "", err
	}

	return strings.ToUpper(hex.EncodeToString(raw)), nil
}

// decodeBitmapAt reads the primary bitmap (16 hex chars) at offset,
// and the secondary bitmap (16 more) if bit 1 is set, returning the
// parsed Bitmap, its hex form, and the number of bytes consumed.
func decodeBitmapAt(data []byte, offset int) (*core.Bitmap, string, int, error) {
	const primaryHexLen = 16

	if offset+primaryHexLen > len(data) {
		return nil, "", 0, core.ErrInvalidBitmap(fmt.Sprintf("need %d bytes for primary bitmap at offset %d, have %d", primaryHexLen, offset, len(data)-offset))
	}

	primary := data[offset : offset+primaryHexLen]

	width := primaryHexLen
	if hasSecondaryBit(primary) {
		width = 2 * primaryHexLen
	}

	if offset+width > len(data) {
		return nil, "", 0, core.ErrInvalidBitmap(fmt.Sprintf("need %d bytes for bitmap at offset %d, have %d", width, offset, len(data)-offset))
	}

	full := data[offset : offset+width]

	bm, err := core.DecodeBitmapHex(string(full))
	if err != nil {
		return nil, "", 0, err
	}

	return bm, strings.ToUpper(string(full)), width, nil
}

// hasSecondaryBit reports whether the first hex character of a
// primary bitmap indicates bit 1 is set (i.e. its top nibble bit is
// set: hex digits 8-F). A malformed first character is treated as "no
// secondary bitmap" and left for DecodeBitmapHex to reject properly.
func hasSecondaryBit(primaryHex []byte) bool {
	c := primaryHex[0]

	var nibble byte

	switch {
	case c >= '0' && c <= '9':
		nibble = c - '0'
	case c >= 'a' && c <= 'f':
		nibble = c - 'a' + 10
	case c >= 'A' && c <= 'F':
		nibble = c - 'A' + 10
	default:
		return false
	}

	return nibble&0x8 != 0
}

func isDecimal(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

func toParseError(fieldNum int, err error) error {
	if _, ok := err.(*core.ParseError); ok {
		return err
	}

	return core.ErrInvalidLength(fieldNum, err.Error())
}
