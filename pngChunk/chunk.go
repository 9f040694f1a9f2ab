package pngChunk

import (
	"encoding/binary"
	"fmt"
)

// Chunk is a decoded PNG chunk.
// Each chunk starts with a uint32 length (big endian), then 4 byte name,
// then data and finally the CRC32 of the name and data.
type Chunk struct {
	length uint32
	typ    ChunkType
	data   []byte
	crc    uint32
}

// Length returns the payload length declared by the stream.
func (c Chunk) Length() uint32 {
	return c.length
}

// Type returns the chunk type.
func (c Chunk) Type() ChunkType {
	return c.typ
}

// Data returns a copy of the payload.
func (c Chunk) Data() []byte {
	return append([]byte(nil), c.data...)
}

// AppendData appends the payload to dst.
func (c Chunk) AppendData(dst []byte) []byte {
	return append(dst, c.data...)
}

// Checksum returns the stored CRC32.
func (c Chunk) Checksum() uint32 {
	return c.crc
}

// String implements fmt.Stringer.
func (c Chunk) String() string {
	return fmt.Sprintf("%s length=%d crc=%08x", c.typ, c.length, c.crc)
}

// frame is a chunk located in a buffer but not yet verified.
// typ and data alias the source buffer.
type frame struct {
	length uint32
	typ    []byte
	data   []byte
	crc    uint32
}

// size returns the number of bytes the chunk occupies in the stream.
func (f frame) size() int {
	return chunkOverhead + int(f.length)
}

// readFrame locates the chunk at the start of buf.
func readFrame(buf []byte) (frame, error) {
	if len(buf) < chunkOverhead {
		return frame{}, ErrSizeTooSmall
	}

	var f frame
	f.length = binary.BigEndian.Uint32(buf[:lengthEnd])
	if f.length > maxChunkLength {
		return frame{}, fmt.Errorf("%w: %d exceeds 2^31-1", ErrInvalidLength, f.length)
	}

	f.typ = buf[lengthEnd:typeEnd]

	// 64 bit arithmetic, a hostile length can not wrap.
	dataEnd := uint64(typeEnd) + uint64(f.length)
	if dataEnd > uint64(len(buf)) {
		return frame{}, fmt.Errorf("%w: %d bytes declared, %d available",
			ErrInvalidLength, f.length, len(buf)-typeEnd)
	}
	crcEnd := dataEnd + checksumSize
	if crcEnd > uint64(len(buf)) {
		return frame{}, ErrInvalidChecksum
	}

	f.data = buf[typeEnd:dataEnd]
	f.crc = binary.BigEndian.Uint32(buf[dataEnd:crcEnd])
	return f, nil
}

// verify checks the stored CRC32 against the computed one.
func (f frame) verify() error {
	if sum := Checksum(f.typ, f.data); sum != f.crc {
		return fmt.Errorf("%w: stored %08x, computed %08x", ErrChecksumMismatch, f.crc, sum)
	}
	return nil
}

// chunk builds a Chunk owning a copy of the payload.
func (f frame) chunk() (Chunk, error) {
	typ, err := ParseChunkType(f.typ)
	if err != nil {
		return Chunk{}, err
	}

	data := make([]byte, len(f.data))
	copy(data, f.data)

	return Chunk{
		length: f.length,
		typ:    typ,
		data:   data,
		crc:    f.crc,
	}, nil
}

// decodeChunk decodes and verifies the chunk at the start of buf.
// It returns the number of bytes the chunk occupies.
func decodeChunk(buf []byte) (Chunk, int, error) {
	f, err := readFrame(buf)
	if err != nil {
		return Chunk{}, 0, err
	}

	if err := f.verify(); err != nil {
		return Chunk{}, 0, err
	}

	c, err := f.chunk()
	if err != nil {
		return Chunk{}, 0, err
	}
	return c, f.size(), nil
}
