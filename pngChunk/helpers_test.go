package pngChunk

import (
	"encoding/binary"
)

func makeChunk(typ string, data []byte) []byte {
	buf := make([]byte, typeEnd, chunkOverhead+len(data))
	binary.BigEndian.PutUint32(buf, uint32(len(data)))
	copy(buf[lengthEnd:], typ)
	buf = append(buf, data...)
	return binary.BigEndian.AppendUint32(buf, Checksum([]byte(typ), data))
}

func makeHeader(width uint32, height uint32, bitDepth uint8, colorType uint8) []byte {
	buf := make([]byte, HeaderSize)
	binary.BigEndian.PutUint32(buf[0:4], width)
	binary.BigEndian.PutUint32(buf[4:8], height)
	buf[8] = bitDepth
	buf[9] = colorType
	return buf
}

func makePNG(chunks ...[]byte) []byte {
	buf := []byte(Signature)
	for _, c := range chunks {
		buf = append(buf, c...)
	}
	return buf
}

var (
	ihdrRGB8 = makeChunk("IHDR", makeHeader(1, 1, 8, 2))
	idatZero = makeChunk("IDAT", nil)
	iendZero = makeChunk("IEND", nil)
)

// minimalPNG is a 1x1 RGB8 stream with an empty IDAT.
func minimalPNG() []byte {
	return makePNG(ihdrRGB8, idatZero, iendZero)
}
