package filestorage

import (
	"fmt"
	"path/filepath"

	"github.com/nspcc-dev/filestorage/pkg/util"
	"go.uber.org/zap"
)

// Open sets storage mode and resolves the root path. Modifying operations of
// the storage opened in read-only mode fail with common.ErrReadOnly.
func (t *FileStorage) Open(ro bool) error {
	p, err := filepath.Abs(t.RootPath)
	if err != nil {
		return fmt.Errorf("resolve root path %q: %w", t.RootPath, err)
	}
	t.RootPath = p
	t.readOnly = ro
	return nil
}

// Init checks configured algorithms and, unless in read-only mode, creates
// the root directory.
func (t *FileStorage) Init() error {
	for _, name := range []string{t.checksum, t.dedupHash} {
		if _, err := t.registry.Hasher(name); err != nil {
			return fmt.Errorf("default hash: %w", err)
		}
	}

	if t.readOnly {
		return nil
	}

	err := util.EnsureDir(t.RootPath, t.Permissions)
	if err != nil {
		return fmt.Errorf("init root directory: %w", err)
	}

	t.writer = newSpecificWriter(t.RootPath, t.Permissions, t.noSync)
	if t.writer == nil {
		t.writer = newGenericWriter(t.Permissions, t.noSync)
	}

	t.log.Debug("storage initialized",
		zap.String("path", t.RootPath),
		zap.Int64("min_compress_size", t.MinCompressSize),
		zap.Bool("no_sync", t.noSync))
	return nil
}

// Close releases storage resources.
func (t *FileStorage) Close() error {
	return nil
}
