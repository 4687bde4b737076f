// Package core provides core ISO8583 message handling functionalities.
package core

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	primaryBitmapLength     = 8
	secondaryBitmapLength   = 16
	primaryBitmapCapacity   = 64
	secondaryBitmapCapacity = 128
)

// Bitmap represents the ISO8583 bitmap indicating which fields are
// present. Bit numbering is 1-based per the spec: bit 1 of the
// primary bitmap flags the presence of a secondary bitmap, not field 1.
type Bitmap struct {
	primary   uint64
	secondary uint64
	extended  bool
}

// NewBitmap parses the provided byte slice to construct a Bitmap
// according to the ISO8583 spec. It reads the primary bitmap (first 8
// bytes) and, if bit 1 is set, reads the secondary bitmap (next 8
// bytes). Returns the Bitmap, the number of bytes consumed (8 or 16),
// and an error if the input is too short.
func NewBitmap(data []byte) (*Bitmap, int, error) {
	if len(data) < primaryBitmapLength {
		return nil, 0, ErrInvalidBitmap(fmt.Sprintf("need %d bytes for primary bitmap, got %d", primaryBitmapLength, len(data)))
	}

	bm := &Bitmap{
		primary: binary.BigEndian.Uint64(data[0:primaryBitmapLength]),
	}

	bytesRead := primaryBitmapLength

	if bm.IsSet(1) {
		if len(data) < secondaryBitmapLength {
			return nil, 0, ErrInvalidBitmap(fmt.Sprintf("need %d bytes for secondary bitmap, got %d", secondaryBitmapLength, len(data)))
		}

		bm.secondary = binary.BigEndian.Uint64(data[primaryBitmapLength:secondaryBitmapLength])
		bm.extended = true
		bytesRead = secondaryBitmapLength
	}

	return bm, bytesRead, nil
}

// DecodeBitmapHex decodes an upper- or lower-case ASCII hex string
// into a Bitmap. This is the wire-boundary entry point: ISO8583
// messages at the codec boundary carry the bitmap as hex, not raw
// bytes, so this wraps NewBitmap with a hex.DecodeString step.
func DecodeBitmapHex(s string) (*Bitmap, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidBitmap(fmt.Sprintf("not valid hex: %v", err))
	}

	bm, consumed, err := NewBitmap(raw)
	if err != nil {
		return nil, err
	}

	if consumed != len(raw) {
		return nil, ErrInvalidBitmap(fmt.Sprintf("trailing bytes after bitmap: consumed %d of %d", consumed, len(raw)))
	}

	return bm, nil
}

// NewBitmapFromFields builds a Bitmap with exactly the given field
// numbers set, automatically flagging the secondary bitmap when any
// field number exceeds 64.
func NewBitmapFromFields(fields []int) *Bitmap {
	bm := &Bitmap{}

	for _, f := range fields {
		bm.Set(f)
	}

	return bm
}

// IsSet returns true if the specified field number is set in the bitmap.
func (b *Bitmap) IsSet(fieldNum int) bool {
	if fieldNum < 1 || fieldNum > secondaryBitmapCapacity {
		return false
	}

	if fieldNum <= primaryBitmapCapacity {
		bit := uint64(1) << (primaryBitmapCapacity - fieldNum)

		return (b.primary & bit) != 0
	}

	if !b.extended {
		return false
	}

	bit := uint64(1) << (secondaryBitmapCapacity - fieldNum)

	return (b.secondary & bit) != 0
}

// Set marks the specified field as present in the bitmap.
func (b *Bitmap) Set(fieldNum int) {
	if fieldNum < 1 || fieldNum > secondaryBitmapCapacity {
		return
	}

	if fieldNum == 1 {
		b.extended = true
	}

	if fieldNum <= primaryBitmapCapacity {
		bit := uint64(1) << (primaryBitmapCapacity - fieldNum)
		b.primary |= bit
	} else {
		b.extended = true
		b.Set(1)

		bit := uint64(1) << (secondaryBitmapCapacity - fieldNum)
		b.secondary |= bit
	}
}

// Unset marks the specified field as absent in the bitmap.
func (b *Bitmap) Unset(fieldNum int) {
	if fieldNum < 1 || fieldNum > secondaryBitmapCapacity {
		return
	}

	if fieldNum <= primaryBitmapCapacity {
		bit := uint64(1) << (primaryBitmapCapacity - fieldNum)
		b.primary &^= bit
	} else {
		bit := uint64(1) << (secondaryBitmapCapacity - fieldNum)
		b.secondary &^= bit
	}
}

// Bytes returns the bitmap as a byte slice in big-endian order: 8
// bytes when no secondary bitmap is present, 16 otherwise.
func (b *Bitmap) Bytes() []byte {
	if !b.extended {
		buf := make([]byte, primaryBitmapLength)
		binary.BigEndian.PutUint64(buf, b.primary)

		return buf
	}

	buf := make([]byte, secondaryBitmapLength)
	binary.BigEndian.PutUint64(buf[0:8], b.primary)
	binary.BigEndian.PutUint64(buf[8:16], b.secondary)

	return buf
}

// HexString renders the bitmap as upper-case ASCII hex, the form it
// takes at the wire boundary.
func (b *Bitmap) HexString() string {
	return strings.ToUpper(hex.EncodeToString(b.Bytes()))
}

// PresentFields returns the field numbers set in the bitmap, in
// ascending order, excluding bit 1 (which only flags the secondary
// bitmap's presence, not a data field) and, symmetrically, bit 65
// (the secondary bitmap's own continuation marker).
func (b *Bitmap) PresentFields() []int {
	fields := make([]int, 0, primaryBitmapCapacity)

	for i := 2; i <= primaryBitmapCapacity; i++ {
		if b.IsSet(i) {
			fields = append(fields, i)
		}
	}

	if b.extended {
		for i := 66; i <= secondaryBitmapCapacity; i++ {
			if b.IsSet(i) {
				fields = append(fields, i)
			}
		}
	}

	return fields
}

// IsExtended returns true if the bitmap carries a secondary bitmap,
// i.e. at least one field from 65-128 may be present.
func (b *Bitmap) IsExtended() bool {
	return b.extended
}
