package filestorage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"
)

type genericWriter struct {
	perm  fs.FileMode
	flags int
}

func newGenericWriter(perm fs.FileMode, noSync bool) writer {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC | os.O_EXCL
	if !noSync {
		flags |= os.O_SYNC
	}
	return &genericWriter{
		perm:  perm,
		flags: flags,
	}
}

func (w *genericWriter) writeData(p string, data []byte) error {
	return w.writeStream(p, dataWriter(data))
}

func (w *genericWriter) writeStream(p string, fn func(io.Writer) error) error {
	for range tmpRetryCount {
		err := w.writeAndRename(tmpPath(p), p, fn)
		if !errors.Is(err, syscall.EEXIST) {
			return err
		}
	}

	return fmt.Errorf("couldn't write file after %d retries: %w", tmpRetryCount, syscall.EEXIST)
}

// writeAndRename opens tmpPath exclusively, fills it with fn and renames it to p.
func (w *genericWriter) writeAndRename(tmp, p string, fn func(io.Writer) error) error {
	f, err := os.OpenFile(tmp, w.flags, w.perm)
	if err != nil {
		if errors.Is(err, syscall.EEXIST) {
			return syscall.EEXIST
		}
		return fmt.Errorf("open temporary file: %w", err)
	}

	err = fn(f)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close temporary file: %w", closeErr)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write data into file %q: %w", tmp, err)
	}

	err = os.Rename(tmp, p)
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename file %q->%q: %w", tmp, p, err)
	}

	return nil
}
