// Package output persists the generated manifest.
package output

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-git/go-billy/v5"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Writer writes files into a billy filesystem.
type Writer struct {
	fs billy.Filesystem
}

// NewWriter creates a new output writer
func NewWriter(fsys billy.Filesystem) *Writer {
	return &Writer{fs: fsys}
}

// Path returns the path Write would use.
func (w *Writer) Path(dir, name string) string {
	return w.fs.Join(dir, name)
}

// EnsureDir creates dir and its parents when missing.
func (w *Writer) EnsureDir(dir string) error {
	if err := w.fs.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("output: create directory %s: %w", dir, err)
	}
	return nil
}

// Write stores data at dir/name, replacing any existing file. The data is
// written to a temporary file first and renamed into place, so the target is
// either the old content or the complete new content.
func (w *Writer) Write(dir, name string, data []byte) (string, error) {
	target := w.Path(dir, name)
	if err := w.EnsureDir(dir); err != nil {
		return "", err
	}

	tmp, tmpName, err := w.tempFile(dir, name)
	if err != nil {
		return "", fmt.Errorf("output: create temp file in %s: %w", dir, err)
	}

	if err := writeAndClose(tmp, data); err != nil {
		_ = w.fs.Remove(tmpName)
		return "", fmt.Errorf("output: write %s: %w", target, err)
	}
	if err := w.fs.Rename(tmpName, target); err != nil {
		_ = w.fs.Remove(tmpName)
		return "", fmt.Errorf("output: replace %s: %w", target, err)
	}
	return target, nil
}

var tempSeq uint32

// tempFile creates an exclusive sibling of dir/name and returns it with the
// path it was opened under. The path is built here rather than read back from
// File.Name, which some billy filesystems report relative to their root.
func (w *Writer) tempFile(dir, name string) (billy.File, string, error) {
	seed := strconv.FormatInt(time.Now().UnixNano(), 36)
	for i := 0; i < 100; i++ {
		suffix := seed + "-" + strconv.FormatUint(uint64(atomic.AddUint32(&tempSeq, 1)), 10)
		tmpName := w.fs.Join(dir, "."+name+".tmp-"+suffix)
		f, err := w.fs.OpenFile(tmpName, os.O_RDWR|os.O_CREATE|os.O_EXCL, filePerm)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		return f, tmpName, nil
	}
	return nil, "", fmt.Errorf("no free temp name for %s", name)
}

func writeAndClose(f billy.File, data []byte) error {
	n, err := f.Write(data)
	if err == nil && n < len(data) {
		err = fmt.Errorf("short write: %d of %d bytes", n, len(data))
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
