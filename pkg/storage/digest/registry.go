package digest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/nspcc-dev/filestorage/pkg/storage/common"
)

// Registry is a read-only set of named hashers and codecs.
type Registry struct {
	hashers map[string]Hasher
	codecs  map[string]Codec
}

// Option is a Registry construction option.
type Option func(*Registry)

// WithHasher registers additional hash algorithm or replaces a built-in one.
func WithHasher(name string, h Hasher) Option {
	return func(r *Registry) {
		r.hashers[name] = h
	}
}

// WithCodec registers additional compression codec or replaces a built-in one.
func WithCodec(name string, c Codec) Option {
	return func(r *Registry) {
		r.codecs[name] = c
	}
}

// New returns a registry with all built-in algorithms and the ones passed in
// options.
func New(opts ...Option) *Registry {
	r := &Registry{
		hashers: builtinHashers(),
		codecs:  builtinCodecs(),
	}
	for i := range opts {
		opts[i](r)
	}
	return r
}

var defaultRegistry = New()

// Default returns process-wide registry with built-in algorithms only.
func Default() *Registry {
	return defaultRegistry
}

// Hasher returns hasher registered under the given name.
func (r *Registry) Hasher(name string) (Hasher, error) {
	h, ok := r.hashers[name]
	if !ok {
		return nil, fmt.Errorf("%w: hash %q", common.ErrUnsupportedAlgorithm, name)
	}
	return h, nil
}

// Codec returns compression codec registered under the given name.
func (r *Registry) Codec(name string) (Codec, error) {
	c, ok := r.codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: compression %q", common.ErrUnsupportedAlgorithm, name)
	}
	return c, nil
}

// Hash calculates digest of data using named algorithm.
func (r *Registry) Hash(name string, data []byte) (string, error) {
	h, err := r.Hasher(name)
	if err != nil {
		return "", err
	}
	return h.Sum(data), nil
}

// Hashers returns sorted names of all registered hash algorithms.
func (r *Registry) Hashers() []string {
	return sortedKeys(r.hashers)
}

// Codecs returns sorted names of all registered codecs.
func (r *Registry) Codecs() []string {
	return sortedKeys(r.codecs)
}

// Compress writes src compressed with the named codec into dst, entry names
// the data inside containers supporting named entries.
func (r *Registry) Compress(name string, dst io.Writer, src io.Reader, entry string) error {
	c, err := r.Codec(name)
	if err != nil {
		return err
	}
	return c.Compress(dst, src, entry)
}

// CompressFile compresses src file into a newly created dst file that must
// not exist. Entry is named after src base name. Partially written dst is
// removed on failure.
func (r *Registry) CompressFile(name, src, dst string) error {
	if _, err := r.Codec(name); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	err = r.Compress(name, out, in, filepath.Base(src))
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close destination: %w", closeErr)
	}
	if err != nil {
		_ = os.Remove(dst)
		return err
	}
	return nil
}

// DecompressStream passes entries of the src file compressed with the named
// codec to fn.
func (r *Registry) DecompressStream(name, src string, fn EntryHandler) error {
	c, err := r.Codec(name)
	if err != nil {
		return err
	}

	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	return c.Decompress(f, fn)
}

func sortedKeys[V any](m map[string]V) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}
