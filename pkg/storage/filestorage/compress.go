package filestorage

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/nspcc-dev/filestorage/pkg/storage/common"
	"github.com/nspcc-dev/filestorage/pkg/storage/idpath"
	"go.uber.org/zap"
)

// Compress compresses the stored object in place with the named codec.
//
// Objects not bigger than MinCompressSize are left untouched and false is
// returned. Stored data is opaque, so every bigger object is compressed even
// if it was compressed before: the caller keeps track of applied codecs and
// reads the object back with the same ones.
//
// The compressed copy is written into a temporary file next to the object
// and renamed over it, the original file is never modified or removed
// before the copy is complete.
func (t *FileStorage) Compress(id idpath.ID, compression string) (bool, error) {
	var (
		start = time.Now()
		done  bool
		err   error
	)
	defer func() { t.observe("Compress", start, err) }()

	done, err = t.compress(id, compression)
	if err != nil {
		err = opError("compress", id, err)
	}
	return done, err
}

func (t *FileStorage) compress(id idpath.ID, compression string) (bool, error) {
	if t.readOnly {
		return false, common.ErrReadOnly
	}

	codec, err := t.registry.Codec(compression)
	if err != nil {
		return false, err
	}

	p := t.treePath(id)

	fi, err := os.Stat(p)
	if err != nil {
		return false, objectError(err)
	}
	size := fi.Size()
	if size <= t.MinCompressSize {
		t.log.Debug("object is too small to be compressed",
			zap.Stringer("id", id),
			zap.Int64("size", size),
			zap.Int64("threshold", t.MinCompressSize))
		return false, nil
	}

	entry := filepath.Base(p)
	err = t.writer.writeStream(p, func(w io.Writer) error {
		src, err := os.Open(p)
		if err != nil {
			return err
		}
		defer src.Close()

		return codec.Compress(w, src, entry)
	})
	if err != nil {
		// Object could be removed concurrently.
		return false, objectError(err)
	}

	var after int64
	if fi, err := os.Stat(p); err == nil {
		after = fi.Size()
		t.metrics.AddCompressed(compression, size, after)
	}

	t.log.Debug("object compressed",
		zap.Stringer("id", id),
		zap.String("compression", compression),
		zap.Int64("size", size),
		zap.Int64("compressed_size", after))

	return true, nil
}
