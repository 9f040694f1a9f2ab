package pngChunk

import (
	"fmt"
)

// Kind is the role of a chunk in the stream.
type Kind int

// Chunk kinds. The first four are the critical chunks.
const (
	KindAncillary Kind = iota
	KindHeader
	KindPalette
	KindImageData
	KindEnd
)

var kindNames = map[Kind]string{
	KindAncillary: "ancillary",
	KindHeader:    "header",
	KindPalette:   "palette",
	KindImageData: "image data",
	KindEnd:       "end",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("unknown kind %d", int(k))
}

// Critical chunk codes.
var (
	codeIHDR = [4]byte{'I', 'H', 'D', 'R'}
	codePLTE = [4]byte{'P', 'L', 'T', 'E'}
	codeIDAT = [4]byte{'I', 'D', 'A', 'T'}
	codeIEND = [4]byte{'I', 'E', 'N', 'D'}
)

// Registered ancillary chunks, including the APNG ones.
var knownAncillary = map[string]struct{}{
	"tRNS": {}, "cHRM": {}, "gAMA": {}, "iCCP": {}, "sBIT": {}, "sRGB": {},
	"cICP": {}, "mDCv": {}, "cLLi": {}, "iTXt": {}, "tEXt": {}, "zTXt": {},
	"bKGD": {}, "hIST": {}, "pHYs": {}, "sPLT": {}, "eXIf": {}, "tIME": {},
	"acTL": {}, "fcTL": {}, "fdAT": {},
}

// ChunkType is a 4 byte chunk code and the role it plays.
// Critical codes are matched exactly; every other code is ancillary.
type ChunkType struct {
	kind Kind
	code [4]byte
}

// Critical chunk types.
var (
	TypeHeader    = ChunkType{kind: KindHeader, code: codeIHDR}
	TypePalette   = ChunkType{kind: KindPalette, code: codePLTE}
	TypeImageData = ChunkType{kind: KindImageData, code: codeIDAT}
	TypeEnd       = ChunkType{kind: KindEnd, code: codeIEND}
)

// ParseChunkType classifies a 4 byte chunk code.
func ParseChunkType(b []byte) (ChunkType, error) {
	if len(b) != 4 {
		return ChunkType{}, fmt.Errorf("%w: %d bytes", ErrInvalidType, len(b))
	}

	var code [4]byte
	copy(code[:], b)

	switch code {
	case codeIHDR:
		return TypeHeader, nil
	case codePLTE:
		return TypePalette, nil
	case codeIDAT:
		return TypeImageData, nil
	case codeIEND:
		return TypeEnd, nil
	}
	return ChunkType{kind: KindAncillary, code: code}, nil
}

// Kind returns the role of the chunk.
func (t ChunkType) Kind() Kind {
	return t.kind
}

// Code returns the raw 4 byte code.
func (t ChunkType) Code() [4]byte {
	return t.code
}

// String returns the chunk name, e.g. "IHDR".
func (t ChunkType) String() string {
	return string(t.code[:])
}

// IsCritical reports whether the chunk is one of IHDR, PLTE, IDAT, IEND.
func (t ChunkType) IsCritical() bool {
	return t.kind != KindAncillary
}

// Known reports whether the code is a critical or a registered ancillary chunk.
func (t ChunkType) Known() bool {
	if t.IsCritical() {
		return true
	}
	_, ok := knownAncillary[t.String()]
	return ok
}

// Property bits are bit 5 of each byte of the code (lowercase letter = set).

// AncillaryBit reports whether the first letter is lowercase.
func (t ChunkType) AncillaryBit() bool {
	return t.code[0]&0x20 != 0
}

// PrivateBit reports whether the second letter is lowercase.
func (t ChunkType) PrivateBit() bool {
	return t.code[1]&0x20 != 0
}

// ReservedBit reports whether the third letter is lowercase.
// Conforming chunks keep it clear.
func (t ChunkType) ReservedBit() bool {
	return t.code[2]&0x20 != 0
}

// SafeToCopy reports whether the fourth letter is lowercase.
func (t ChunkType) SafeToCopy() bool {
	return t.code[3]&0x20 != 0
}
