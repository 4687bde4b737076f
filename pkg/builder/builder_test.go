package builder_test

import (
	"strings"
	"testing"

	"github.com/mojave-labs/iso8583/pkg/builder"
	"github.com/mojave-labs/iso8583/pkg/core"
	"github.com/mojave-labs/iso8583/pkg/spec"
)

func newBuilder() *builder.Builder {
	return builder.New(spec.NewRegistry(), spec.V1987, spec.NetworkNone)
}

// s1 builds the spec's S1 scenario: minimal authorisation round-trip.
func s1() *builder.Builder {
	return newBuilder().
		SetMTI("0100").
		SetString(2, "4111111111111111").
		SetString(3, "000000").
		SetString(4, "000000001000").
		SetString(11, "123456").
		SetString(41, "TERM0001").
		SetString(42, "MERCHANT123456 ")
}

func TestBuildS1DetectsNetworkAndValidates(t *testing.T) {
	msg, err := s1().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if msg.Network != spec.NetworkVisa {
		t.Errorf("Network = %q, want VISA", msg.Network)
	}
}

// TestBuildS2BitmapDerivation checks the bitmap spec.md's S2 scenario
// names: bits {2,3,4,11,41,42} set, bit 1 clear, 16 hex chars upper-case.
func TestBuildS2BitmapDerivation(t *testing.T) {
	msg, err := s1().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(msg.Bitmap) != 16 {
		t.Fatalf("Bitmap length = %d, want 16", len(msg.Bitmap))
	}

	if msg.Bitmap != strings.ToUpper(msg.Bitmap) {
		t.Errorf("Bitmap %q is not upper-case", msg.Bitmap)
	}

	bm, err := core.DecodeBitmapHex(msg.Bitmap)
	if err != nil {
		t.Fatalf("DecodeBitmapHex: %v", err)
	}

	want := map[int]bool{2: true, 3: true, 4: true, 11: true, 41: true, 42: true}
	for _, f := range bm.PresentFields() {
		if !want[f] {
			t.Errorf("unexpected bit set for field %d", f)
		}

		delete(want, f)
	}

	if len(want) != 0 {
		t.Errorf("bits never set for fields %v", want)
	}

	if bm.IsSet(1) {
		t.Error("bit 1 should be clear: no secondary bitmap needed")
	}
}

// TestBuildS3LuhnRejection covers the spec's S3 scenario.
func TestBuildS3LuhnRejection(t *testing.T) {
	_, err := s1().SetString(2, "4111111111111112").Build()
	if err == nil {
		t.Fatal("expected a BuildError for a bad Luhn checksum")
	}

	buildErr, ok := err.(*core.BuildError)
	if !ok {
		t.Fatalf("error type = %T, want *core.BuildError", err)
	}

	found := false

	for _, d := range buildErr.Diagnostics {
		if d.Rule == "luhn" && d.Field == 2 {
			found = true
		}
	}

	if !found {
		t.Errorf("expected a luhn diagnostic on field 2, got %v", buildErr.Diagnostics)
	}
}

// TestBuildS5SecondaryBitmap covers the spec's S5 scenario: field 128
// present forces a 32-hex-character bitmap with bit 1 set.
func TestBuildS5SecondaryBitmap(t *testing.T) {
	msg, err := s1().SetBytes(128, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(msg.Bitmap) != 32 {
		t.Fatalf("Bitmap length = %d, want 32", len(msg.Bitmap))
	}

	bm, err := core.DecodeBitmapHex(msg.Bitmap)
	if err != nil {
		t.Fatalf("DecodeBitmapHex: %v", err)
	}

	if !bm.IsSet(1) {
		t.Error("bit 1 should be set when a secondary bitmap is present")
	}

	if !bm.IsSet(128) {
		t.Error("field 128 should be present in the bitmap")
	}
}

// TestBuildS6NetworkRequiredFieldFailure covers the spec's S6
// scenario: a MASTERCARD message missing field 22 refuses to build.
func TestBuildS6NetworkRequiredFieldFailure(t *testing.T) {
	b := builder.New(spec.NewRegistry(), spec.V1987, spec.NetworkMastercard).
		SetMTI("0100").
		SetString(2, "5411111111111115").
		SetString(3, "000000").
		SetString(4, "000000001000").
		SetString(11, "123456").
		SetString(24, "001").
		SetString(25, "00")

	_, err := b.Build()
	if err == nil {
		t.Fatal("expected BuildError for missing required field 22")
	}

	buildErr, ok := err.(*core.BuildError)
	if !ok {
		t.Fatalf("error type = %T, want *core.BuildError", err)
	}

	found := false

	for _, d := range buildErr.Diagnostics {
		if d.Rule == "required" && d.Field == 22 {
			found = true
		}
	}

	if !found {
		t.Errorf("expected a required diagnostic on field 22, got %v", buildErr.Diagnostics)
	}
}

func TestBuildBytesConcatenatesMTIBitmapAndFields(t *testing.T) {
	wire, err := s1().BuildBytes()
	if err != nil {
		t.Fatalf("BuildBytes() error = %v", err)
	}

	if string(wire[:4]) != "0100" {
		t.Errorf("MTI = %q, want %q", wire[:4], "0100")
	}

	if string(wire[4:20]) != strings.ToUpper(string(wire[4:20])) {
		t.Errorf("bitmap %q is not upper-case", wire[4:20])
	}

	// Field 2 is LLVAR: "16" + 16-digit PAN follows the bitmap.
	rest := wire[20:]
	if string(rest[:2]) != "16" {
		t.Errorf("field 2 length prefix = %q, want %q", rest[:2], "16")
	}

	if string(rest[2:18]) != "4111111111111111" {
		t.Errorf("field 2 payload = %q", rest[2:18])
	}
}

func TestBuildBytesDeterministic(t *testing.T) {
	a, err := s1().BuildBytes()
	if err != nil {
		t.Fatalf("BuildBytes() error = %v", err)
	}

	b, err := s1().BuildBytes()
	if err != nil {
		t.Fatalf("BuildBytes() error = %v", err)
	}

	if string(a) != string(b) {
		t.Error("BuildBytes() is not deterministic for identical inputs")
	}
}

func TestSetIntRendersDecimalText(t *testing.T) {
	msg, err := s1().SetInt(11, 654321).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	v, ok := msg.Get(11)
	if !ok || v.Text != "654321" {
		t.Errorf("field 11 = %+v, want text %q", v, "654321")
	}
}

func TestUnsetFieldThenSetFieldRestoresField(t *testing.T) {
	msg, err := s1().UnsetField(42).SetString(42, "x").UnsetField(42).
		SetString(42, "MERCHANT123456 ").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !msg.HasField(42) {
		t.Error("field 42 should be present after re-setting it")
	}
}
