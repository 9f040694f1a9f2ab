// Package watcher notifies when PNG files change on disk.
package watcher

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	minInterval    = 1 * time.Second
	additionalWait = 10 * time.Millisecond
)

// Watcher watches a set of files.
type Watcher struct {
	FilePaths []string

	inner *fsnotify.Watcher

	// absolute path -> path as given
	paths map[string]string

	// in
	terminate chan struct{}

	// out
	signal chan string
	done   chan struct{}
}

// Initialize initializes a Watcher.
func (w *Watcher) Initialize() error {
	w.paths = make(map[string]string)
	dirs := make(map[string]struct{})

	for _, fpath := range w.FilePaths {
		if _, err := os.Stat(fpath); err != nil {
			return err
		}

		// use absolute paths to support Darwin
		abs, err := filepath.Abs(fpath)
		if err != nil {
			return err
		}
		w.paths[abs] = fpath
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	var err error
	w.inner, err = fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// watch parent directories, editors often replace files instead of writing them
	for dir := range dirs {
		err = w.inner.Add(dir)
		if err != nil {
			w.inner.Close() //nolint:errcheck
			return err
		}
	}

	w.terminate = make(chan struct{})
	w.signal = make(chan string)
	w.done = make(chan struct{})

	go w.run()

	return nil
}

// Close closes a Watcher.
func (w *Watcher) Close() {
	close(w.terminate)
	<-w.done
}

func (w *Watcher) run() {
	defer close(w.done)

	lastCalled := make(map[string]time.Time)

outer:
	for {
		select {
		case event := <-w.inner.Events:
			if (event.Op&fsnotify.Write) != fsnotify.Write &&
				(event.Op&fsnotify.Create) != fsnotify.Create {
				continue
			}

			abs, _ := filepath.Abs(event.Name)
			fpath, ok := w.paths[abs]
			if !ok {
				continue
			}

			if time.Since(lastCalled[abs]) < minInterval {
				continue
			}

			// wait some additional time to allow the writer to complete its job
			time.Sleep(additionalWait)
			lastCalled[abs] = time.Now()

			select {
			case w.signal <- fpath:
			case <-w.terminate:
				break outer
			}

		case <-w.inner.Errors:
			break outer

		case <-w.terminate:
			break outer
		}
	}

	close(w.signal)
	w.inner.Close() //nolint:errcheck
}

// Watch returns a channel that receives the path of every changed file.
// It is closed when the Watcher stops.
func (w *Watcher) Watch() chan string {
	return w.signal
}
