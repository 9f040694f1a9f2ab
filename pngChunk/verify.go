package pngChunk

import (
	"sync"
)

// decodeParallel locates every chunk boundary first, verifies the checksums
// concurrently, then walks the chunks in order. It returns the same result
// as the sequential walk.
func (d Decoder) decodeParallel(buf []byte) (*Container, error) {
	var frames []frame
	var offsets []int
	var locateErr error

	offset := len(Signature)
	for offset < len(buf) {
		f, err := readFrame(buf[offset:])
		if err != nil {
			locateErr = err
			break
		}
		frames = append(frames, f)
		offsets = append(offsets, offset)
		offset += f.size()
	}

	errs := verifyFrames(frames, d.VerifyWorkers)

	w := &walker{strict: d.StrictMethods}

	for i, f := range frames {
		err := errs[i]
		var c Chunk
		if err == nil {
			c, err = f.chunk()
		}
		if err == nil {
			err = w.push(c)
		}
		if err != nil {
			return nil, w.chunkError(buf, offsets[i], i, err)
		}
	}

	if locateErr != nil {
		return nil, w.chunkError(buf, offset, len(frames), locateErr)
	}

	return w.finish()
}

// verifyFrames checks the CRC of every frame using the given number of workers.
// The returned slice is indexed like frames.
func verifyFrames(frames []frame, workers int) []error {
	errs := make([]error, len(frames))
	if workers > len(frames) {
		workers = len(frames)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range indexes {
				errs[j] = frames[j].verify()
			}
		}()
	}

	for j := range frames {
		indexes <- j
	}
	close(indexes)
	wg.Wait()

	return errs
}
