package filestorage

import (
	"os"
	"path/filepath"
	"time"

	"github.com/nspcc-dev/filestorage/pkg/storage/common"
	"github.com/nspcc-dev/filestorage/pkg/storage/digest"
	"github.com/nspcc-dev/filestorage/pkg/storage/idpath"
	"github.com/nspcc-dev/filestorage/pkg/util"
	"go.uber.org/zap"
)

// Write stores data under the given id replacing existing contents if any.
// Returned stats are calculated over data with the algorithms from prm.
// Unknown algorithm names are reported before the filesystem is touched.
func (t *FileStorage) Write(id idpath.ID, data []byte, prm WritePrm) (DataStats, error) {
	var (
		start = time.Now()
		stats DataStats
		err   error
	)
	defer func() { t.observe("Write", start, err) }()

	stats, err = t.put(id, data, prm, false)
	if err != nil {
		err = opError("write", id, err)
	}
	return stats, err
}

// Update is Write for an existing object. Returned stats have OriginalSize
// set to the size of the replaced file. Returns common.ErrNotFound if there
// is no such object.
func (t *FileStorage) Update(id idpath.ID, data []byte, prm WritePrm) (DataStats, error) {
	var (
		start = time.Now()
		stats DataStats
		err   error
	)
	defer func() { t.observe("Update", start, err) }()

	stats, err = t.put(id, data, prm, true)
	if err != nil {
		err = opError("update", id, err)
	}
	return stats, err
}

func (t *FileStorage) put(id idpath.ID, data []byte, prm WritePrm, update bool) (DataStats, error) {
	if t.readOnly {
		return DataStats{}, common.ErrReadOnly
	}

	checksum, dedup, err := t.hashers(prm)
	if err != nil {
		return DataStats{}, err
	}

	var (
		p            = t.treePath(id)
		originalSize *int64
	)

	if update {
		fi, err := os.Stat(p)
		if err != nil {
			return DataStats{}, objectError(err)
		}
		size := fi.Size()
		originalSize = &size
	} else if err = util.EnsureDir(filepath.Dir(p), t.Permissions); err != nil {
		return DataStats{}, err
	}

	if err = t.writer.writeData(p, data); err != nil {
		return DataStats{}, ioError(err)
	}

	stats := DataStats{
		Checksum:     checksum.Sum(data),
		DedupHash:    dedup.Sum(data),
		Size:         int64(len(data)),
		OriginalSize: originalSize,
	}

	t.log.Debug("object stored",
		zap.Stringer("id", id),
		zap.String("path", p),
		zap.Int64("size", stats.Size),
		zap.Bool("update", update))

	return stats, nil
}

func (t *FileStorage) hashers(prm WritePrm) (digest.Hasher, digest.Hasher, error) {
	checksum, dedup := prm.Checksum, prm.DedupHash
	if checksum == "" {
		checksum = t.checksum
	}
	if dedup == "" {
		dedup = t.dedupHash
	}

	ch, err := t.registry.Hasher(checksum)
	if err != nil {
		return nil, nil, err
	}
	dh, err := t.registry.Hasher(dedup)
	if err != nil {
		return nil, nil, err
	}
	return ch, dh, nil
}
