// Package report prints parsed PNG files.
package report

import (
	"fmt"
	"io"
	"strings"

	"code.cloudfoundry.org/bytefmt"

	"github.com/poolqa/PngCheck/pngChunk"
)

// Options are report options.
type Options struct {
	// ListChunks prints every chunk in stream order.
	ListChunks bool
	// PreviewBytes is the number of payload bytes shown per chunk.
	PreviewBytes int
}

// Write prints the content of a container.
func Write(w io.Writer, name string, fileSize int, c *pngChunk.Container, opts Options) error {
	var b strings.Builder

	h := c.Header()

	fmt.Fprintf(&b, "-- PNG information --\n")
	fmt.Fprintf(&b, "File name: %s\n", name)
	fmt.Fprintf(&b, "File size: %s (%d bytes)\n", bytefmt.ByteSize(uint64(fileSize)), fileSize)
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "-- IHDR --\n")
	fmt.Fprintf(&b, "Dimensions: %dx%d\n", h.Width, h.Height)
	fmt.Fprintf(&b, "Color layout: %v (bit depth %d, color type %d)\n",
		h.Layout, h.Layout.BitDepth(), h.Layout.ColorType())
	fmt.Fprintf(&b, "Compression method: %d\n", h.CompressionMethod)
	fmt.Fprintf(&b, "Filter method: %d\n", h.FilterMethod)
	fmt.Fprintf(&b, "Interlace method: %d\n", h.InterlaceMethod)
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "-- PLTE --\n")
	if pal, ok := c.Palette(); ok {
		fmt.Fprintf(&b, "Entries: %d (%d bytes)\n", c.PaletteEntries(), pal.Length())
	} else {
		fmt.Fprintf(&b, "none\n")
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "-- IDAT --\n")
	fmt.Fprintf(&b, "Number of chunks: %d\n", c.ImageDataCount())
	fmt.Fprintf(&b, "Total size: %s\n", bytefmt.ByteSize(uint64(c.ImageDataSize())))
	if n := c.ImageDataCount(); n != 0 {
		fmt.Fprintf(&b, "Average chunk size: %s\n", bytefmt.ByteSize(uint64(c.ImageDataSize()/n)))
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "-- IEND --\n")
	fmt.Fprintf(&b, "%v\n", c.End())
	fmt.Fprintf(&b, "\n")

	anc := c.Ancillary()
	fmt.Fprintf(&b, "-- Ancillary chunks --\n")
	fmt.Fprintf(&b, "Number of chunks: %d\n", len(anc))
	for _, a := range anc {
		fmt.Fprintf(&b, "%s\n", describeAncillary(a.Type()))
	}

	if opts.ListChunks {
		fmt.Fprintf(&b, "\n")
		writeChunks(&b, c.Chunks(), opts.PreviewBytes)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func describeAncillary(t pngChunk.ChunkType) string {
	var flags []string
	if !t.Known() {
		flags = append(flags, "unregistered")
	}
	if t.PrivateBit() {
		flags = append(flags, "private")
	}
	if t.SafeToCopy() {
		flags = append(flags, "safe to copy")
	}
	if len(flags) == 0 {
		return t.String()
	}
	return t.String() + " (" + strings.Join(flags, ", ") + ")"
}

// writeChunks prints the chunk number, name and the first bytes of each chunk.
func writeChunks(b *strings.Builder, chunks []pngChunk.Chunk, preview int) {
	for i, c := range chunks {
		fmt.Fprintf(b, "-----------\n")
		fmt.Fprintf(b, "Chunk # %d\n", i)
		fmt.Fprintf(b, "Chunk length: %d\n", c.Length())
		fmt.Fprintf(b, "Chunk type: %v\n", c.Type())
		fmt.Fprintf(b, "Chunk CRC: %08x\n", c.Checksum())

		if preview > 0 {
			data := c.Data()
			limit := min(preview, len(data))
			fmt.Fprintf(b, "Chunk data (%d bytes): % x\n", limit, data[:limit])
		}
	}
}
