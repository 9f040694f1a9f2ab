package pngChunk

// 89 50 4E 47 0D 0A 1A 0A
const Signature = "\x89\x50\x4E\x47\x0D\x0A\x1A\x0A"

// Chunk layout: 4 byte length, 4 byte type, data, 4 byte CRC32.
const (
	lengthEnd     = 4
	typeEnd       = 8
	checksumSize  = 4
	chunkOverhead = typeEnd + checksumSize

	// maxChunkLength is the largest length the format allows (2^31-1).
	maxChunkLength = 1<<31 - 1
)

// HeaderSize is the IHDR payload size.
const HeaderSize = 13

// IHDR field offsets.
const (
	ihdrWidth       = 0
	ihdrHeight      = 4
	ihdrBitDepth    = 8
	ihdrColorType   = 9
	ihdrCompression = 10
	ihdrFilter      = 11
	ihdrInterlace   = 12
)

// Color types.
const (
	ctGrayscale      = 0
	ctTrueColor      = 2
	ctPaletted       = 3
	ctGrayscaleAlpha = 4
	ctTrueColorAlpha = 6
)

// Interlace type.
const (
	itNone  = 0
	itAdam7 = 1
)

// maxDimension is the largest width or height the format allows.
const maxDimension = 1<<31 - 1
