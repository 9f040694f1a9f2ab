package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNoFile(t *testing.T) {
	w := &Watcher{FilePaths: []string{"/nonexistent.png"}}
	err := w.Initialize()
	require.Error(t, err)
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	fpath := filepath.Join(dir, "a.png")
	other := filepath.Join(dir, "b.png")

	for _, p := range []string{fpath, other} {
		err := os.WriteFile(p, []byte("x"), 0o644)
		require.NoError(t, err)
	}

	w := &Watcher{FilePaths: []string{fpath}}
	err := w.Initialize()
	require.NoError(t, err)
	defer w.Close()

	// not watched
	err = os.WriteFile(filepath.Join(dir, "c.png"), []byte("y"), 0o644)
	require.NoError(t, err)

	err = os.WriteFile(fpath, []byte("y"), 0o644)
	require.NoError(t, err)

	select {
	case changed := <-w.Watch():
		require.Equal(t, fpath, changed)
	case <-time.After(500 * time.Millisecond):
		t.Errorf("timed out")
	}
}
