package pngChunk

import (
	"hash/crc32"
)

// Checksum computes the CRC32 of a chunk: type bytes followed by data.
// The length field and the stored CRC are not covered.
func Checksum(typ []byte, data []byte) uint32 {
	crc := crc32.NewIEEE()
	crc.Write(typ)
	crc.Write(data)
	return crc.Sum32()
}

// VerifyChecksum reports whether expected is the CRC32 of typ and data.
func VerifyChecksum(expected uint32, typ []byte, data []byte) bool {
	return Checksum(typ, data) == expected
}
