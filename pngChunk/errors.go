package pngChunk

import (
	"errors"
	"fmt"
)

// errors returned by Decode and its helpers.
var (
	ErrNotRecognized = errors.New("not a PNG file")

	ErrSizeTooSmall     = errors.New("buffer size too small")
	ErrInvalidLength    = errors.New("invalid chunk length")
	ErrInvalidType      = errors.New("invalid chunk type")
	ErrInvalidChecksum  = errors.New("invalid chunk checksum")
	ErrChecksumMismatch = errors.New("chunk checksum mismatch")

	ErrInvalidHeaderSize  = errors.New("invalid IHDR size")
	ErrInvalidDimensions  = errors.New("invalid image dimensions")
	ErrInvalidColorLayout = errors.New("invalid bit depth and color type combination")
	ErrUnsupportedMethod  = errors.New("unsupported compression, filter or interlace method")

	ErrDuplicateHeader      = errors.New("multiple IHDR chunks")
	ErrDuplicatePalette     = errors.New("multiple PLTE chunks")
	ErrDuplicateEnd         = errors.New("multiple IEND chunks")
	ErrMissingHeader        = errors.New("missing IHDR chunk")
	ErrMissingEnd           = errors.New("missing IEND chunk")
	ErrHeaderNotFirst       = errors.New("IHDR is not the first chunk")
	ErrTrailingDataAfterEnd = errors.New("data after IEND chunk")
)

// ChunkError locates a decode failure inside the stream.
type ChunkError struct {
	// Offset of the chunk's length field from the start of the buffer.
	Offset int
	// Index of the chunk in stream order.
	Index int
	// Type is empty when the failure happened before the type could be read.
	Type string
	Err  error
}

// Error implements error.
func (e *ChunkError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("chunk #%d at offset %d: %v", e.Index, e.Offset, e.Err)
	}
	return fmt.Sprintf("chunk #%d (%s) at offset %d: %v", e.Index, e.Type, e.Offset, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ChunkError) Unwrap() error {
	return e.Err
}
