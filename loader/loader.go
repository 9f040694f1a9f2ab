// Package loader reads PNG files into memory and decodes them.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"

	"code.cloudfoundry.org/bytefmt"

	"github.com/poolqa/PngCheck/pngChunk"
)

// errors returned by ReadFile.
var (
	ErrFileNotFound = errors.New("file not found")
	ErrReadFailure  = errors.New("failed to read file")
	ErrFileTooLarge = errors.New("file too large")
)

// ReadFile reads a whole file, refusing files larger than maxSize bytes.
func ReadFile(fpath string, maxSize uint64) ([]byte, error) {
	f, err := os.Open(fpath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, fpath)
		}
		return nil, fmt.Errorf("%w: %v", ErrReadFailure, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailure, err)
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrReadFailure, fpath)
	}
	if uint64(st.Size()) > maxSize {
		return nil, fmt.Errorf("%w: %s exceeds %s",
			ErrFileTooLarge, bytefmt.ByteSize(uint64(st.Size())), bytefmt.ByteSize(maxSize))
	}

	// the file may grow between Stat and ReadAll.
	limit := int64(math.MaxInt64)
	if maxSize < math.MaxInt64 {
		limit = int64(maxSize) + 1
	}
	buf, err := io.ReadAll(io.LimitReader(f, limit))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailure, err)
	}
	if uint64(len(buf)) > maxSize {
		return nil, fmt.Errorf("%w: more than %s", ErrFileTooLarge, bytefmt.ByteSize(maxSize))
	}

	return buf, nil
}

// Load reads a file and decodes it with dec.
// It also returns the file size.
func Load(fpath string, maxSize uint64, dec pngChunk.Decoder) (*pngChunk.Container, int, error) {
	buf, err := ReadFile(fpath, maxSize)
	if err != nil {
		return nil, 0, err
	}

	c, err := dec.Decode(buf)
	if err != nil {
		return nil, len(buf), err
	}

	return c, len(buf), nil
}
