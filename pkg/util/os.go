package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nspcc-dev/filestorage/pkg/storage/common"
)

// MkdirAllX calls os.MkdirAll with the passed permissions
// but with +x for a user and a group. This makes the created
// dir openable regardless of the passed permissions.
func MkdirAllX(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm|0110)
}

// EnsureDir makes sure that path is an existing directory creating it
// together with all missing parents. It's safe to call it concurrently for
// the same path: a directory created by someone else in the meantime is not
// an error. Any other failure is wrapped into [common.ErrDirectoryProvision].
func EnsureDir(path string, perm fs.FileMode) error {
	err := MkdirAllX(path, perm)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrExist) {
		// Lost the race against another creator, make sure it's a directory.
		fi, statErr := os.Stat(path)
		if statErr == nil && fi.IsDir() {
			return nil
		}
	}
	return fmt.Errorf("%w %q: %w", common.ErrDirectoryProvision, path, err)
}
