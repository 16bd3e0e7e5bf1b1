package filestorage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/nspcc-dev/filestorage/pkg/storage/common"
	"github.com/nspcc-dev/filestorage/pkg/storage/digest"
	"github.com/nspcc-dev/filestorage/pkg/storage/idpath"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncoding is used by ReadText when no encoding is specified.
const DefaultEncoding = "utf8"

// Read returns object data. If prm.Compression is set, the file is
// decompressed with the named codec and contents of all its entries are
// returned. If prm.Encoding is set, data is decoded from that encoding into
// UTF-8. Returns common.ErrNotFound if there is no such object.
func (t *FileStorage) Read(id idpath.ID, prm ReadPrm) ([]byte, error) {
	var (
		start = time.Now()
		data  []byte
		err   error
	)
	defer func() { t.observe("Read", start, err) }()

	data, err = t.read(id, prm)
	if err != nil {
		err = opError("read", id, err)
	}
	return data, err
}

// ReadText is Read returning a string, prm.Encoding defaults to
// DefaultEncoding.
func (t *FileStorage) ReadText(id idpath.ID, prm ReadPrm) (string, error) {
	if prm.Encoding == "" {
		prm.Encoding = DefaultEncoding
	}
	data, err := t.Read(id, prm)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (t *FileStorage) read(id idpath.ID, prm ReadPrm) ([]byte, error) {
	var (
		codec digest.Codec
		enc   encoding.Encoding
		err   error
	)
	if prm.Compression != "" {
		codec, err = t.registry.Codec(prm.Compression)
		if err != nil {
			return nil, err
		}
	}
	if prm.Encoding != "" {
		enc, err = textEncoding(prm.Encoding)
		if err != nil {
			return nil, err
		}
	}

	var (
		p    = t.treePath(id)
		data []byte
	)
	if codec == nil {
		data, err = os.ReadFile(p)
	} else {
		data, err = decompress(codec, p)
	}
	if err != nil {
		return nil, objectError(err)
	}

	if enc != nil {
		data, err = enc.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s text: %w", prm.Encoding, err)
		}
	}
	return data, nil
}

func decompress(codec digest.Codec, p string) ([]byte, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	err = codec.Decompress(f, func(_ string, r io.Reader) error {
		_, err := buf.ReadFrom(r)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	return buf.Bytes(), nil
}

func textEncoding(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding %q", common.ErrUnsupportedAlgorithm, name)
	}
	return enc, nil
}

// Stat returns file information of the stored object. Returns
// common.ErrNotFound if there is no such object.
func (t *FileStorage) Stat(id idpath.ID) (fs.FileInfo, error) {
	var (
		start = time.Now()
		fi    fs.FileInfo
		err   error
	)
	defer func() { t.observe("Stat", start, err) }()

	fi, err = os.Stat(t.treePath(id))
	if err != nil {
		err = opError("stat", id, objectError(err))
	}
	return fi, err
}

// Exists checks whether the object is stored.
func (t *FileStorage) Exists(id idpath.ID) (bool, error) {
	_, err := os.Stat(t.treePath(id))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, opError("exists", id, ioError(err))
}
