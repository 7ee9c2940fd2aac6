package handles

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"halhandles-go/errcode"
)

// fields is a hand-derived view of a generic handle used only to check the
// encoder; versions are compared modulo 256.
type fields struct {
	index   int16
	typ     uint8
	version uint8
}

func split(h Handle) fields {
	u := uint32(h)
	return fields{
		index:   int16(u & 0xFFFF),
		typ:     uint8(u >> 24),
		version: uint8(u >> 16),
	}
}

func TestCreateHandleScenarios(t *testing.T) {
	cases := []struct {
		name    string
		index   int16
		typ     uint8
		version int16
		want    Handle
	}{
		{"dio index 5", 5, 1, 0, 16777221},
		{"negative index", -1, 1, 0, Invalid},
		{"zero type", 0, 0, 0, Invalid},
		{"type 128", 0, 128, 0, Invalid},
		{"type 255", 0, 255, 0, Invalid},
		{"max type", 0, 127, 0, 0x7F000000},
		{"max index", math.MaxInt16, 1, 0, 0x01007FFF},
		{"version byte", 3, uint8(TypePWM), 7, 0x09070003},
		{"version 255", 0, 1, 255, 0x01FF0000},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, CreateHandle(c.index, c.typ, c.version))
		})
	}
}

func TestCreateHandleNegativeIndexAlwaysInvalid(t *testing.T) {
	versions := []int16{math.MinInt16, -1, 0, 1, 255, math.MaxInt16}
	for index := int32(math.MinInt16); index < 0; index += 97 {
		for typ := 0; typ <= math.MaxUint8; typ++ {
			for _, v := range versions {
				if h := CreateHandle(int16(index), uint8(typ), v); h != Invalid {
					t.Fatalf("CreateHandle(%d, %d, %d) = %#x, want invalid", index, typ, v, h)
				}
			}
		}
	}
	require.Equal(t, Invalid, CreateHandle(-1, 1, 0))
}

func TestCreateHandleBadTypeAlwaysInvalid(t *testing.T) {
	bad := []uint8{0}
	for typ := 128; typ <= math.MaxUint8; typ++ {
		bad = append(bad, uint8(typ))
	}
	for _, index := range []int16{0, 1, 100, math.MaxInt16} {
		for _, typ := range bad {
			for _, v := range []int16{math.MinInt16, 0, 42, math.MaxInt16} {
				if h := CreateHandle(index, typ, v); h != Invalid {
					t.Fatalf("CreateHandle(%d, %d, %d) = %#x, want invalid", index, typ, v, h)
				}
			}
		}
	}
}

func TestEncodeReportsReason(t *testing.T) {
	_, err := Encode(-1, 0, 0)
	require.ErrorIs(t, err, errcode.InvalidIndex, "index is checked before type")

	_, err = Encode(0, 0, 0)
	require.ErrorIs(t, err, errcode.InvalidType)
	require.Equal(t, errcode.InvalidType, errcode.Of(err))

	_, err = Encode(0, 200, 0)
	require.ErrorIs(t, err, errcode.InvalidType)

	h, err := Encode(5, TypeDIO, 0)
	require.NoError(t, err)
	require.Equal(t, Handle(16777221), h)
	require.True(t, h.Valid())
}

func TestEncodeRejectsVersionThatCancelsType(t *testing.T) {
	// (1 << 8) + -256 == 0, which would pack to the sentinel.
	_, err := Encode(0, TypeDIO, -256)
	require.ErrorIs(t, err, errcode.InvalidVersion)
	require.Equal(t, Invalid, CreateHandle(0, 1, -256))

	// With a non-zero index the same version still yields a usable value.
	h, err := Encode(9, TypeDIO, -256)
	require.NoError(t, err)
	require.Equal(t, Handle(9), h)
}

func TestCreateHandleInjectiveOverGenerationVersions(t *testing.T) {
	indices := []int16{0, 1, 255, 256, 4097, math.MaxInt16}
	seen := make(map[Handle]fields, int(MaxType)*(MaxVersion+1)*len(indices))
	for typ := 1; typ <= int(MaxType); typ++ {
		for v := 0; v <= MaxVersion; v++ {
			for _, index := range indices {
				want := fields{index: index, typ: uint8(typ), version: uint8(v)}
				h := CreateHandle(index, uint8(typ), int16(v))
				if h == Invalid {
					t.Fatalf("valid %+v encoded to the invalid sentinel", want)
				}
				if got := split(h); got != want {
					t.Fatalf("split(%#x) = %+v, want %+v", h, got, want)
				}
				if prev, dup := seen[h]; dup {
					t.Fatalf("%+v and %+v both encode to %#x", prev, want, h)
				}
				seen[h] = want
			}
		}
	}
}

func TestNegativeVersionBorrowsFromType(t *testing.T) {
	// Outside 0..255 the version spills into the type byte; the encoder
	// does not guard against it.
	require.Equal(t, CreateHandle(4, 1, 0), CreateHandle(4, 2, -256))
	require.Equal(t, uint8(0), split(CreateHandle(0, 1, -1)).typ)
	require.Equal(t, uint8(0xFF), split(CreateHandle(0, 1, -1)).version)
}

func TestCreateHandleWrapsWithoutPanicking(t *testing.T) {
	require.NotPanics(t, func() {
		for _, v := range []int16{math.MinInt16, -1, math.MaxInt16} {
			for _, typ := range []uint8{1, 64, 127} {
				_ = CreateHandle(math.MaxInt16, typ, v)
			}
		}
	})
	// 127<<8 + 32767 = 0xFEFF, shifted into the sign bit.
	require.Equal(t, Handle(-16842752), CreateHandle(0, 127, math.MaxInt16))
}

func TestEncodeErrorsAreComparable(t *testing.T) {
	_, err := Encode(0, 128, 0)
	var e *errcode.E
	require.True(t, errors.As(err, &e))
	require.Equal(t, "encode", e.Op)
	require.Equal(t, "type(128)", e.Msg)
}

func TestCreateHandleDoesNotAllocate(t *testing.T) {
	cases := []struct {
		name    string
		index   int16
		typ     uint8
		version int16
	}{
		{"valid", 5, 1, 0},
		{"negative index", -1, 1, 0},
		{"zero type", 0, 0, 0},
		{"type above max", 0, 200, 0},
		{"version cancels type", 0, 1, -256},
	}
	for _, c := range cases {
		allocs := testing.AllocsPerRun(1000, func() {
			_ = CreateHandle(c.index, c.typ, c.version)
		})
		if allocs != 0 {
			t.Fatalf("%s: CreateHandle allocated %.1f times per call", c.name, allocs)
		}
	}
}
