package pngChunk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseChunkType(t *testing.T) {
	for _, ca := range []struct {
		code     string
		kind     Kind
		critical bool
		known    bool
	}{
		{"IHDR", KindHeader, true, true},
		{"PLTE", KindPalette, true, true},
		{"IDAT", KindImageData, true, true},
		{"IEND", KindEnd, true, true},
		{"tEXt", KindAncillary, false, true},
		{"acTL", KindAncillary, false, true},
		{"ihdr", KindAncillary, false, false},
		{"Iend", KindAncillary, false, false},
		{"prVt", KindAncillary, false, false},
		{"ABCD", KindAncillary, false, false},
		{"\x00\x01\x02\x03", KindAncillary, false, false},
	} {
		t.Run(ca.code, func(t *testing.T) {
			typ, err := ParseChunkType([]byte(ca.code))
			require.NoError(t, err)
			require.Equal(t, ca.kind, typ.Kind())
			require.Equal(t, ca.critical, typ.IsCritical())
			require.Equal(t, ca.known, typ.Known())
			require.Equal(t, ca.code, typ.String())
		})
	}
}

func TestParseChunkTypeSize(t *testing.T) {
	for _, b := range [][]byte{nil, []byte("IHD"), []byte("IHDRX")} {
		_, err := ParseChunkType(b)
		require.ErrorIs(t, err, ErrInvalidType)
	}
}

func TestChunkTypeEquality(t *testing.T) {
	typ, err := ParseChunkType([]byte("IDAT"))
	require.NoError(t, err)
	require.Equal(t, TypeImageData, typ)

	a, _ := ParseChunkType([]byte("gAMA"))
	b, _ := ParseChunkType([]byte("gAMA"))
	require.Equal(t, a, b)
	require.Equal(t, [4]byte{'g', 'A', 'M', 'A'}, a.Code())
}

func TestChunkTypePropertyBits(t *testing.T) {
	typ, _ := ParseChunkType([]byte("IHDR"))
	require.False(t, typ.AncillaryBit())
	require.False(t, typ.PrivateBit())
	require.False(t, typ.ReservedBit())
	require.False(t, typ.SafeToCopy())

	typ, _ = ParseChunkType([]byte("tEXt"))
	require.True(t, typ.AncillaryBit())
	require.False(t, typ.PrivateBit())
	require.False(t, typ.ReservedBit())
	require.True(t, typ.SafeToCopy())

	typ, _ = ParseChunkType([]byte("prvt"))
	require.True(t, typ.AncillaryBit())
	require.True(t, typ.PrivateBit())
	require.True(t, typ.ReservedBit())
	require.True(t, typ.SafeToCopy())
}

func TestKindString(t *testing.T) {
	require.Equal(t, "header", KindHeader.String())
	require.Equal(t, "ancillary", KindAncillary.String())
	require.Equal(t, "unknown kind 42", Kind(42).String())
}
