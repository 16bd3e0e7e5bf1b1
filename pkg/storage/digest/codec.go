package digest

import (
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Names of built-in compression codecs.
const (
	ZIP    = "ZIP"
	GZIP   = "GZIP"
	ZSTD   = "ZSTD"
	LZ4    = "LZ4"
	SNAPPY = "SNAPPY"
)

// File is a random access source of compressed data, [*os.File] satisfies it.
type File interface {
	io.Reader
	io.ReaderAt
	Stat() (fs.FileInfo, error)
}

// EntryHandler is called for every entry of the decompressed container. The
// reader is valid only until the handler returns. Streaming codecs have one
// entry with an empty name.
type EntryHandler func(name string, r io.Reader) error

// Codec is a compression algorithm working on whole files.
type Codec interface {
	// Compress writes compressed src into dst. Codecs supporting named
	// entries store src under the given name.
	Compress(dst io.Writer, src io.Reader, name string) error
	// Decompress iterates over entries of the compressed src.
	Decompress(src File, fn EntryHandler) error
}

type zipCodec struct{}

func (zipCodec) Compress(dst io.Writer, src io.Reader, name string) error {
	zw := zip.NewWriter(dst)
	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("create zip entry: %w", err)
	}
	if _, err = io.Copy(w, src); err != nil {
		return fmt.Errorf("write zip entry: %w", err)
	}
	return zw.Close()
}

func (zipCodec) Decompress(src File, fn EntryHandler) error {
	fi, err := src.Stat()
	if err != nil {
		return err
	}
	zr, err := zip.NewReader(src, fi.Size())
	if err != nil {
		return fmt.Errorf("open zip archive: %w", err)
	}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		err = zipEntry(f, fn)
		if err != nil {
			return err
		}
	}
	return nil
}

func zipEntry(f *zip.File, fn EntryHandler) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open zip entry %q: %w", f.Name, err)
	}
	defer rc.Close()

	return fn(f.Name, rc)
}

type gzipCodec struct{}

func (gzipCodec) Compress(dst io.Writer, src io.Reader, name string) error {
	zw := gzip.NewWriter(dst)
	zw.Name = name
	zw.ModTime = time.Now()
	if _, err := io.Copy(zw, src); err != nil {
		return fmt.Errorf("write gzip stream: %w", err)
	}
	return zw.Close()
}

func (gzipCodec) Decompress(src File, fn EntryHandler) error {
	zr, err := gzip.NewReader(src)
	if err != nil {
		return fmt.Errorf("open gzip stream: %w", err)
	}
	defer zr.Close()

	return fn(zr.Name, zr)
}

type zstdCodec struct{}

func (zstdCodec) Compress(dst io.Writer, src io.Reader, _ string) error {
	enc, err := zstd.NewWriter(dst)
	if err != nil {
		return err
	}
	if _, err = io.Copy(enc, src); err != nil {
		_ = enc.Close()
		return fmt.Errorf("write zstd stream: %w", err)
	}
	return enc.Close()
}

func (zstdCodec) Decompress(src File, fn EntryHandler) error {
	dec, err := zstd.NewReader(src)
	if err != nil {
		return fmt.Errorf("open zstd stream: %w", err)
	}
	defer dec.Close()

	return fn("", dec)
}

type lz4Codec struct{}

func (lz4Codec) Compress(dst io.Writer, src io.Reader, _ string) error {
	zw := lz4.NewWriter(dst)
	if _, err := io.Copy(zw, src); err != nil {
		return fmt.Errorf("write lz4 frame: %w", err)
	}
	return zw.Close()
}

func (lz4Codec) Decompress(src File, fn EntryHandler) error {
	return fn("", lz4.NewReader(src))
}

type snappyCodec struct{}

func (snappyCodec) Compress(dst io.Writer, src io.Reader, _ string) error {
	zw := snappy.NewBufferedWriter(dst)
	if _, err := io.Copy(zw, src); err != nil {
		return fmt.Errorf("write snappy stream: %w", err)
	}
	return zw.Close()
}

func (snappyCodec) Decompress(src File, fn EntryHandler) error {
	return fn("", snappy.NewReader(src))
}

func builtinCodecs() map[string]Codec {
	return map[string]Codec{
		ZIP:    zipCodec{},
		GZIP:   gzipCodec{},
		ZSTD:   zstdCodec{},
		LZ4:    lz4Codec{},
		SNAPPY: snappyCodec{},
	}
}
