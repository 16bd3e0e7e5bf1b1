package digest

import (
	"encoding/hex"
	"hash/crc32"
	"strconv"

	"github.com/cespare/xxhash/v2"
	sha256 "github.com/minio/sha256-simd"
	"github.com/nspcc-dev/tzhash/tz"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// Names of built-in hash algorithms.
const (
	CRC32   = "CRC32"
	SHA256  = "SHA256"
	SHA3256 = "SHA3-256"
	BLAKE3  = "BLAKE3"
	XXH64   = "XXH64"
	TZ      = "TZ"
)

// Hasher calculates a string digest of the data.
type Hasher interface {
	Sum(data []byte) string
}

// HashFunc is an adapter allowing to use ordinary functions as Hasher.
type HashFunc func(data []byte) string

// Sum implements Hasher.
func (f HashFunc) Sum(data []byte) string {
	return f(data)
}

func crc32Sum(data []byte) string {
	return strconv.FormatUint(uint64(crc32.ChecksumIEEE(data)), 16)
}

func sha256Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

func sha3Sum(data []byte) string {
	h := sha3.Sum256(data)
	return hex.EncodeToString(h[:])
}

func blake3Sum(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}

func xxh64Sum(data []byte) string {
	s := strconv.FormatUint(xxhash.Sum64(data), 16)
	if len(s) < 16 {
		s = "0000000000000000"[len(s):] + s
	}
	return s
}

func tzSum(data []byte) string {
	h := tz.Sum(data)
	return hex.EncodeToString(h[:])
}

func builtinHashers() map[string]Hasher {
	return map[string]Hasher{
		CRC32:   HashFunc(crc32Sum),
		SHA256:  HashFunc(sha256Sum),
		SHA3256: HashFunc(sha3Sum),
		BLAKE3:  HashFunc(blake3Sum),
		XXH64:   HashFunc(xxh64Sum),
		TZ:      HashFunc(tzSum),
	}
}
