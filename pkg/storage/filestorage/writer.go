package filestorage

import (
	"io"
	"math/rand/v2"
	"strconv"
)

// writer replaces file contents atomically: data is written into a
// temporary sibling file which is then renamed over the target, so readers
// and crashes observe either the old or the new contents.
type writer interface {
	writeData(p string, data []byte) error
	// writeStream stores whatever fn writes. Nothing is renamed if fn fails.
	writeStream(p string, fn func(io.Writer) error) error
}

// tmpRetryCount is the number of temporary names tried for a single write
// before giving up with EEXIST, see tmpPath.
const tmpRetryCount = 5

// tmpPath returns a new random temporary name for p. Temporary files are
// created exclusively, a taken name (another writer or a crash leftover) is
// just skipped, so neither the number of concurrent writers nor leftovers
// limit writes of the object.
func tmpPath(p string) string {
	return p + "#" + strconv.FormatUint(rand.Uint64(), 16)
}

func dataWriter(data []byte) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	}
}
