//go:build linux

package filestorage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sys/unix"
)

// linuxWriter fills an anonymous O_TMPFILE file and gives it a temporary
// name only when it's complete, so crashed writes leave no garbage behind.
type linuxWriter struct {
	perm     uint32
	flags    int
	fallback writer
}

func newSpecificWriter(root string, perm fs.FileMode, noSync bool) writer {
	flags := unix.O_WRONLY | unix.O_TMPFILE | unix.O_CLOEXEC
	if !noSync {
		flags |= unix.O_DSYNC
	}
	fd, err := unix.Open(root, flags, uint32(perm))
	if err != nil {
		return nil // Which means that OS-specific writer can't be created and the generic one should be used.
	}
	_ = unix.Close(fd) // Don't care about error.
	return &linuxWriter{
		perm:     uint32(perm),
		flags:    flags,
		fallback: newGenericWriter(perm, noSync),
	}
}

func (w *linuxWriter) writeData(p string, data []byte) error {
	return w.writeStream(p, dataWriter(data))
}

func (w *linuxWriter) writeStream(p string, fn func(io.Writer) error) error {
	fd, err := unix.Open(filepath.Dir(p), w.flags, w.perm)
	if err != nil {
		if errors.Is(err, unix.EOPNOTSUPP) || errors.Is(err, unix.EISDIR) || errors.Is(err, unix.EINVAL) {
			// Subdirectory is on another filesystem without O_TMPFILE support.
			return w.fallback.writeStream(p, fn)
		}
		return fmt.Errorf("unix open: %w", err)
	}

	f := os.NewFile(uintptr(fd), p)
	err = fn(f)
	if err == nil {
		err = w.link(fd, p)
	}
	errClose := f.Close()
	if err != nil {
		return err // Close() error is ignored, we have a better one.
	}
	if errClose != nil {
		return fmt.Errorf("close temporary file: %w", errClose)
	}
	return nil
}

// link gives the anonymous file a temporary name and renames it to p.
func (w *linuxWriter) link(fd int, p string) error {
	procname := "/proc/self/fd/" + strconv.Itoa(fd)

	for range tmpRetryCount {
		tmp := tmpPath(p)
		err := unix.Linkat(unix.AT_FDCWD, procname, unix.AT_FDCWD, tmp, unix.AT_SYMLINK_FOLLOW)
		if errors.Is(err, unix.EEXIST) {
			continue
		}
		if err != nil {
			return fmt.Errorf("link temporary file %q: %w", tmp, err)
		}

		err = os.Rename(tmp, p)
		if err != nil {
			_ = os.Remove(tmp)
			return fmt.Errorf("rename file %q->%q: %w", tmp, p, err)
		}
		return nil
	}

	return fmt.Errorf("couldn't link file after %d retries: %w", tmpRetryCount, unix.EEXIST)
}
