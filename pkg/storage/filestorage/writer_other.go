//go:build !linux

package filestorage

import "io/fs"

func newSpecificWriter(string, fs.FileMode, bool) writer {
	return nil
}
