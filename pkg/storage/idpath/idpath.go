/*
Package idpath maps object identifiers to their location in the storage tree.

An identifier is rendered as lowercase big-endian hex, left-padded with zeros
to a multiple of [ChunkLen] digits and to at least [MinChunks] chunks. Every
chunk except the last one becomes a directory (the most significant chunk is
the outermost one), the last chunk is a file name followed by [Ext]:

	0                  -> 0000/0000.f
	0x12345            -> 0001/2345.f
	0x1234567890       -> 0012/3456/7890.f
	0xffffffffffffffff -> ffff/ffff/ffff/ffff.f

A single directory never holds more than 16^ChunkLen entries of each kind.
Files and directories on the same level can't clash since only files carry
the extension. The layout is a part of the on-disk format, changing any of
the constants below invalidates all existing stores.
*/
package idpath

import (
	"fmt"
	"math"
	"math/big"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nspcc-dev/filestorage/pkg/storage/common"
)

const (
	// Ext is a storage file extension.
	Ext = "f"
	// ChunkLen is a number of hex digits in a single path component.
	ChunkLen = 4
	// MinChunks is a minimal number of path components (including file name).
	MinChunks = 2
	// MaxChunks is a number of path components for the widest identifier.
	MaxChunks = 64 / 4 / ChunkLen
)

// ID is an externally allocated object identifier.
type ID uint64

// String implements fmt.Stringer.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseID decodes identifier from its decimal or 0x-prefixed hexadecimal
// representation. Negative, malformed and out-of-range values are rejected
// with [common.ErrInvalidIdentifier].
func ParseID(s string) (ID, error) {
	var (
		base = 10
		str  = s
	)
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		base = 16
		str = str[2:]
	}
	v, err := strconv.ParseUint(str, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", common.ErrInvalidIdentifier, s, err)
	}
	return ID(v), nil
}

// IDFromInt64 converts signed integer to ID. Negative values are rejected.
func IDFromInt64(v int64) (ID, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: negative value %d", common.ErrInvalidIdentifier, v)
	}
	return ID(v), nil
}

// IDFromBig converts arbitrary precision integer to ID. Values that don't fit
// into unsigned 64 bits are rejected.
func IDFromBig(v *big.Int) (ID, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: nil value", common.ErrInvalidIdentifier)
	}
	if v.Sign() < 0 || !v.IsUint64() {
		return 0, fmt.Errorf("%w: %s is out of range [0, %d]", common.ErrInvalidIdentifier, v, uint64(math.MaxUint64))
	}
	return ID(v.Uint64()), nil
}

func chunks(id ID) []string {
	hex := strconv.FormatUint(uint64(id), 16)

	n := (len(hex) + ChunkLen - 1) / ChunkLen
	if n < MinChunks {
		n = MinChunks
	}
	hex = strings.Repeat("0", n*ChunkLen-len(hex)) + hex

	res := make([]string, n)
	for i := range res {
		res[i] = hex[i*ChunkLen : (i+1)*ChunkLen]
	}
	return res
}

// Path returns a slash-separated storage path of the object relative to the
// storage root.
func Path(id ID) string {
	return strings.Join(chunks(id), "/") + "." + Ext
}

// Resolve returns the full path of the object file stored under root.
func Resolve(root string, id ID) string {
	parts := chunks(id)
	dirs := make([]string, 0, len(parts)+1)
	dirs = append(dirs, root)
	dirs = append(dirs, parts...)

	return filepath.Join(dirs...) + "." + Ext
}

// FromPath is the inverse of [Path]. It accepts both slash- and
// OS-separated relative paths.
func FromPath(p string) (ID, error) {
	p = filepath.ToSlash(p)

	trimmed, ok := strings.CutSuffix(p, "."+Ext)
	if !ok {
		return 0, fmt.Errorf("%w: %q has no .%s extension", common.ErrInvalidIdentifier, p, Ext)
	}

	parts := strings.Split(trimmed, "/")
	if len(parts) < MinChunks || len(parts) > MaxChunks {
		return 0, fmt.Errorf("%w: %q has %d components", common.ErrInvalidIdentifier, p, len(parts))
	}
	for _, c := range parts {
		if len(c) != ChunkLen || strings.ToLower(c) != c {
			return 0, fmt.Errorf("%w: invalid component %q in %q", common.ErrInvalidIdentifier, c, p)
		}
	}

	v, err := strconv.ParseUint(strings.Join(parts, ""), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", common.ErrInvalidIdentifier, p, err)
	}

	// Reject non-canonical forms like 0000/0000/0001.f.
	id := ID(v)
	if Path(id) != p {
		return 0, fmt.Errorf("%w: %q is not a canonical path of %s", common.ErrInvalidIdentifier, p, id)
	}
	return id, nil
}
