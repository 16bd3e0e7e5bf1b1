package filestorage

import (
	"io/fs"

	"github.com/nspcc-dev/filestorage/pkg/storage/digest"
	"github.com/nspcc-dev/filestorage/pkg/storage/idpath"
	"go.uber.org/zap"
)

// FileStorage represents object storage as filesystem tree.
type FileStorage struct {
	Info

	// MinCompressSize is the size of the object in bytes up to which
	// (inclusively) Compress is a no-op.
	MinCompressSize int64

	checksum  string
	dedupHash string
	noSync    bool
	readOnly  bool

	registry *digest.Registry
	writer   writer
	log      *zap.Logger
	metrics  Metrics
}

// Info groups the information about file storage.
type Info struct {
	// Permission bits of stored files. Directories get additional +x
	// for user and group.
	Permissions fs.FileMode

	// Full path to the root directory.
	RootPath string
}

const (
	// DefaultMinCompressSize is a default FileStorage.MinCompressSize.
	DefaultMinCompressSize = 1024
	// DefaultChecksum is an algorithm used for DataStats.Checksum unless
	// specified otherwise.
	DefaultChecksum = digest.CRC32
	// DefaultDedupHash is an algorithm used for DataStats.DedupHash unless
	// specified otherwise.
	DefaultDedupHash = digest.SHA256

	// Type is a storage type used in logs and metrics.
	Type = "filestorage"
)

// DataStats describes data passed to Write or Update.
type DataStats struct {
	Checksum  string `json:"checksum"`
	DedupHash string `json:"dedupHash"`
	Size      int64  `json:"size"`
	// OriginalSize is the size of the replaced file, set by Update only.
	OriginalSize *int64 `json:"originalSize,omitempty"`
}

// WritePrm groups the parameters of Write and Update operations. Empty
// names are replaced with storage defaults.
type WritePrm struct {
	Checksum  string
	DedupHash string
}

// ReadPrm groups the parameters of Read operation.
type ReadPrm struct {
	// Encoding is a name of the character encoding the stored text uses.
	// If set, data is converted to UTF-8.
	Encoding string
	// Compression is a name of the codec the object was compressed with.
	// If empty, the file is read as is.
	Compression string
}

// New creates a storage with the given options. Open and Init must be called
// before use.
func New(opts ...Option) *FileStorage {
	f := &FileStorage{
		Info: Info{
			Permissions: 0o640,
		},
		MinCompressSize: DefaultMinCompressSize,
		checksum:        DefaultChecksum,
		dedupHash:       DefaultDedupHash,
		registry:        digest.Default(),
		log:             zap.NewNop(),
		metrics:         noopMetrics{},
	}
	for i := range opts {
		opts[i](f)
	}
	return f
}

// Create opens a writable storage rooted at path creating the root directory
// if needed.
func Create(path string, opts ...Option) (*FileStorage, error) {
	f := New(append([]Option{WithPath(path)}, opts...)...)
	if err := f.Open(false); err != nil {
		return nil, err
	}
	if err := f.Init(); err != nil {
		return nil, err
	}
	return f, nil
}

// Type returns storage type.
func (*FileStorage) Type() string {
	return Type
}

// Path returns storage root path.
func (t *FileStorage) Path() string {
	return t.RootPath
}

// Registry returns the algorithm registry used by the storage.
func (t *FileStorage) Registry() *digest.Registry {
	return t.registry
}

// SetLogger replaces the logger, nil disables logging.
func (t *FileStorage) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	t.log = l
}

func (t *FileStorage) treePath(id idpath.ID) string {
	return idpath.Resolve(t.RootPath, id)
}
