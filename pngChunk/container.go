package pngChunk

// Container is a validated PNG chunk stream.
// It owns all chunk payloads and is not modified after Decode returns.
type Container struct {
	header    HeaderInfo
	palette   *Chunk
	imageData []Chunk
	end       Chunk
	ancillary []Chunk
	chunks    []Chunk // stream order
}

// Header returns the decoded IHDR chunk.
func (c *Container) Header() HeaderInfo {
	return c.header
}

// Palette returns the PLTE chunk, if present.
func (c *Container) Palette() (Chunk, bool) {
	if c.palette == nil {
		return Chunk{}, false
	}
	return *c.palette, true
}

// PaletteEntries returns the number of RGB entries of the PLTE chunk.
func (c *Container) PaletteEntries() int {
	if c.palette == nil {
		return 0
	}
	return len(c.palette.data) / 3
}

// ImageData returns the IDAT chunks in stream order.
func (c *Container) ImageData() []Chunk {
	return append([]Chunk(nil), c.imageData...)
}

// ImageDataCount returns the number of IDAT chunks.
func (c *Container) ImageDataCount() int {
	return len(c.imageData)
}

// ImageDataSize returns the total IDAT payload size.
func (c *Container) ImageDataSize() int {
	n := 0
	for _, ch := range c.imageData {
		n += len(ch.data)
	}
	return n
}

// CompressedData returns the concatenated IDAT payloads, i.e. the zlib stream.
func (c *Container) CompressedData() []byte {
	buf := make([]byte, 0, c.ImageDataSize())
	for _, ch := range c.imageData {
		buf = ch.AppendData(buf)
	}
	return buf
}

// End returns the IEND chunk.
func (c *Container) End() Chunk {
	return c.end
}

// Ancillary returns the non critical chunks in stream order.
func (c *Container) Ancillary() []Chunk {
	return append([]Chunk(nil), c.ancillary...)
}

// Chunks returns every chunk in stream order.
func (c *Container) Chunks() []Chunk {
	return append([]Chunk(nil), c.chunks...)
}
