package pngChunk

import (
	"encoding/binary"
	"fmt"
)

// ColorLayout is a legal combination of color type and bit depth.
// The color type is stored in the high nibble, log2(bit depth) in the low one.
type ColorLayout uint8

// Color layouts.
const (
	Gray1       ColorLayout = ctGrayscale<<4 | 0
	Gray2       ColorLayout = ctGrayscale<<4 | 1
	Gray4       ColorLayout = ctGrayscale<<4 | 2
	Gray8       ColorLayout = ctGrayscale<<4 | 3
	Gray16      ColorLayout = ctGrayscale<<4 | 4
	RGB8        ColorLayout = ctTrueColor<<4 | 3
	RGB16       ColorLayout = ctTrueColor<<4 | 4
	Paletted1   ColorLayout = ctPaletted<<4 | 0
	Paletted2   ColorLayout = ctPaletted<<4 | 1
	Paletted4   ColorLayout = ctPaletted<<4 | 2
	Paletted8   ColorLayout = ctPaletted<<4 | 3
	GrayAlpha8  ColorLayout = ctGrayscaleAlpha<<4 | 3
	GrayAlpha16 ColorLayout = ctGrayscaleAlpha<<4 | 4
	RGBA8       ColorLayout = ctTrueColorAlpha<<4 | 3
	RGBA16      ColorLayout = ctTrueColorAlpha<<4 | 4
)

var colorLayoutNames = map[ColorLayout]string{
	Gray1:       "Gray1",
	Gray2:       "Gray2",
	Gray4:       "Gray4",
	Gray8:       "Gray8",
	Gray16:      "Gray16",
	RGB8:        "RGB8",
	RGB16:       "RGB16",
	Paletted1:   "Paletted1",
	Paletted2:   "Paletted2",
	Paletted4:   "Paletted4",
	Paletted8:   "Paletted8",
	GrayAlpha8:  "GrayAlpha8",
	GrayAlpha16: "GrayAlpha16",
	RGBA8:       "RGBA8",
	RGBA16:      "RGBA16",
}

// NewColorLayout combines a bit depth and a color type.
func NewColorLayout(bitDepth uint8, colorType uint8) (ColorLayout, error) {
	valid := false
	switch colorType {
	case ctGrayscale:
		valid = bitDepth == 1 || bitDepth == 2 || bitDepth == 4 || bitDepth == 8 || bitDepth == 16
	case ctTrueColor, ctGrayscaleAlpha, ctTrueColorAlpha:
		valid = bitDepth == 8 || bitDepth == 16
	case ctPaletted:
		valid = bitDepth == 1 || bitDepth == 2 || bitDepth == 4 || bitDepth == 8
	}
	if !valid {
		return 0, fmt.Errorf("%w: bit depth %d, color type %d",
			ErrInvalidColorLayout, bitDepth, colorType)
	}

	log2 := uint8(0)
	for d := bitDepth; d > 1; d >>= 1 {
		log2++
	}
	return ColorLayout(colorType<<4 | log2), nil
}

// BitDepth returns the number of bits per sample or palette index.
func (l ColorLayout) BitDepth() uint8 {
	return 1 << (uint8(l) & 0x0F)
}

// ColorType returns the IHDR color type byte.
func (l ColorLayout) ColorType() uint8 {
	return uint8(l) >> 4
}

// Channels returns the number of samples per pixel.
func (l ColorLayout) Channels() int {
	switch l.ColorType() {
	case ctTrueColor:
		return 3
	case ctGrayscaleAlpha:
		return 2
	case ctTrueColorAlpha:
		return 4
	}
	return 1
}

// BitsPerPixel returns the number of bits a pixel occupies in a scanline.
func (l ColorLayout) BitsPerPixel() int {
	return int(l.BitDepth()) * l.Channels()
}

// String implements fmt.Stringer.
func (l ColorLayout) String() string {
	if n, ok := colorLayoutNames[l]; ok {
		return n
	}
	return fmt.Sprintf("ColorLayout(%#02x)", uint8(l))
}

// HeaderInfo is the decoded content of an IHDR chunk.
type HeaderInfo struct {
	Width             uint32
	Height            uint32
	Layout            ColorLayout
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

// Interlaced reports whether the image uses Adam7 interlacing.
func (h HeaderInfo) Interlaced() bool {
	return h.InterlaceMethod == itAdam7
}

// checkMethods rejects the values the format leaves undefined.
func (h HeaderInfo) checkMethods() error {
	// Only compression method 0 is defined
	if h.CompressionMethod != 0 {
		return fmt.Errorf("%w: compression method %d", ErrUnsupportedMethod, h.CompressionMethod)
	}
	// Only filter method 0 is defined
	if h.FilterMethod != 0 {
		return fmt.Errorf("%w: filter method %d", ErrUnsupportedMethod, h.FilterMethod)
	}
	if h.InterlaceMethod != itNone && h.InterlaceMethod != itAdam7 {
		return fmt.Errorf("%w: interlace method %d", ErrUnsupportedMethod, h.InterlaceMethod)
	}
	if h.Width > maxDimension || h.Height > maxDimension {
		return fmt.Errorf("%w: %dx%d exceeds 2^31-1", ErrInvalidDimensions, h.Width, h.Height)
	}
	return nil
}

// DecodeHeader decodes an IHDR payload.
//
//	width:              4 bytes
//	height:             4 bytes
//	bit depth:          1 byte
//	color type:         1 byte
//	compression method: 1 byte
//	filter method:      1 byte
//	interlace method:   1 byte
func DecodeHeader(payload []byte) (HeaderInfo, error) {
	if len(payload) != HeaderSize {
		return HeaderInfo{}, fmt.Errorf("%w: got %d, expected %d",
			ErrInvalidHeaderSize, len(payload), HeaderSize)
	}

	var h HeaderInfo

	h.Width = binary.BigEndian.Uint32(payload[ihdrWidth:ihdrHeight])
	if h.Width == 0 {
		return HeaderInfo{}, fmt.Errorf("%w: width is zero", ErrInvalidDimensions)
	}

	h.Height = binary.BigEndian.Uint32(payload[ihdrHeight:ihdrBitDepth])
	if h.Height == 0 {
		return HeaderInfo{}, fmt.Errorf("%w: height is zero", ErrInvalidDimensions)
	}

	var err error
	h.Layout, err = NewColorLayout(payload[ihdrBitDepth], payload[ihdrColorType])
	if err != nil {
		return HeaderInfo{}, err
	}

	h.CompressionMethod = payload[ihdrCompression]
	h.FilterMethod = payload[ihdrFilter]
	h.InterlaceMethod = payload[ihdrInterlace]

	return h, nil
}
