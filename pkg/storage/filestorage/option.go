package filestorage

import (
	"io/fs"

	"github.com/nspcc-dev/filestorage/pkg/storage/digest"
	"go.uber.org/zap"
)

// Option configures FileStorage.
type Option func(*FileStorage)

// WithPath sets the root directory. Relative paths are resolved on Open.
func WithPath(p string) Option {
	return func(f *FileStorage) {
		f.RootPath = p
	}
}

// WithPerm sets permission bits of stored files.
func WithPerm(p fs.FileMode) Option {
	return func(f *FileStorage) {
		f.Permissions = p
	}
}

// WithMinCompressSize sets the threshold of Compress. Zero is replaced with
// DefaultMinCompressSize.
func WithMinCompressSize(s int64) Option {
	return func(f *FileStorage) {
		if s == 0 {
			s = DefaultMinCompressSize
		}
		f.MinCompressSize = s
	}
}

// WithNoSync disables synchronous writes.
func WithNoSync(noSync bool) Option {
	return func(f *FileStorage) {
		f.noSync = noSync
	}
}

// WithChecksum sets the default checksum algorithm.
func WithChecksum(name string) Option {
	return func(f *FileStorage) {
		f.checksum = name
	}
}

// WithDedupHash sets the default deduplication hash algorithm.
func WithDedupHash(name string) Option {
	return func(f *FileStorage) {
		f.dedupHash = name
	}
}

// WithRegistry sets algorithm registry, digest.Default() is used otherwise.
func WithRegistry(r *digest.Registry) Option {
	return func(f *FileStorage) {
		f.registry = r
	}
}

// WithLogger sets logger.
func WithLogger(l *zap.Logger) Option {
	return func(f *FileStorage) {
		f.log = l
	}
}

// WithMetrics sets metrics collector.
func WithMetrics(m Metrics) Option {
	return func(f *FileStorage) {
		f.metrics = m
	}
}
