package pngChunk

// Decoder stages.
const (
	dsStart    = iota // signature checked, IHDR expected
	dsSeenIHDR        // body chunks
	dsSeenIEND        // nothing else may follow
)

// Decoder decodes PNG chunk streams.
// The zero value is ready to use.
type Decoder struct {
	// StrictMethods rejects compression, filter and interlace methods
	// the format does not define.
	StrictMethods bool

	// VerifyWorkers is the number of goroutines verifying checksums.
	// Values below 2 verify each chunk while walking the stream.
	VerifyWorkers int
}

// Decode reads a complete PNG byte stream and returns its chunks.
func Decode(buf []byte) (*Container, error) {
	return Decoder{}.Decode(buf)
}

// Decode reads a complete PNG byte stream and returns its chunks.
// buf is not retained.
func (d Decoder) Decode(buf []byte) (*Container, error) {
	if err := checkSignature(buf); err != nil {
		return nil, err
	}

	if d.VerifyWorkers > 1 {
		return d.decodeParallel(buf)
	}

	w := &walker{strict: d.StrictMethods}
	offset := len(Signature)

	for index := 0; offset < len(buf); index++ {
		c, n, err := decodeChunk(buf[offset:])
		if err != nil {
			return nil, w.chunkError(buf, offset, index, err)
		}

		if err := w.push(c); err != nil {
			return nil, w.chunkError(buf, offset, index, err)
		}
		offset += n
	}

	return w.finish()
}

func checkSignature(buf []byte) error {
	if len(buf) < len(Signature) || string(buf[:len(Signature)]) != Signature {
		return ErrNotRecognized
	}
	return nil
}

// walker enforces chunk ordering and uniqueness, and sorts chunks by role.
type walker struct {
	strict bool
	stage  int
	c      Container
}

func (w *walker) push(c Chunk) error {
	switch w.stage {
	case dsStart:
		if c.typ.kind != KindHeader {
			return ErrHeaderNotFirst
		}
		// Decode right away, a broken header makes the rest pointless.
		h, err := DecodeHeader(c.data)
		if err != nil {
			return err
		}
		if w.strict {
			if err := h.checkMethods(); err != nil {
				return err
			}
		}
		w.c.header = h
		w.stage = dsSeenIHDR

	case dsSeenIHDR:
		switch c.typ.kind {
		case KindHeader:
			return ErrDuplicateHeader

		case KindPalette:
			if w.c.palette != nil {
				return ErrDuplicatePalette
			}
			w.c.palette = &c

		case KindImageData:
			w.c.imageData = append(w.c.imageData, c)

		case KindEnd:
			w.c.end = c
			w.stage = dsSeenIEND

		default:
			w.c.ancillary = append(w.c.ancillary, c)
		}

	case dsSeenIEND:
		if c.typ.kind == KindEnd {
			return ErrDuplicateEnd
		}
		return ErrTrailingDataAfterEnd
	}

	w.c.chunks = append(w.c.chunks, c)
	return nil
}

// chunkError locates err. Anything going wrong after IEND is trailing data.
func (w *walker) chunkError(buf []byte, offset int, index int, err error) error {
	if w.stage == dsSeenIEND && err != ErrDuplicateEnd {
		err = ErrTrailingDataAfterEnd
	}
	return &ChunkError{
		Offset: offset,
		Index:  index,
		Type:   typeName(buf, offset),
		Err:    err,
	}
}

func (w *walker) finish() (*Container, error) {
	switch w.stage {
	case dsStart:
		return nil, ErrMissingHeader
	case dsSeenIHDR:
		return nil, ErrMissingEnd
	}
	c := w.c
	return &c, nil
}

// typeName returns the printable type of the chunk at offset, if any.
func typeName(buf []byte, offset int) string {
	if offset+typeEnd > len(buf) {
		return ""
	}
	for _, b := range buf[offset+lengthEnd : offset+typeEnd] {
		if (b < 'A' || b > 'Z') && (b < 'a' || b > 'z') {
			return ""
		}
	}
	return string(buf[offset+lengthEnd : offset+typeEnd])
}
