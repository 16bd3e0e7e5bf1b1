package config

import (
	"fmt"
	"io/fs"
	"math/bits"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cast"
)

// String reads configuration value from c by name and casts it to string.
func String(c *Config, name string) (string, error) {
	x, err := cast.ToStringE(c.Value(name))
	if err != nil {
		return "", fmt.Errorf("invalid %s: %w", name, err)
	}
	return x, nil
}

// StringSafe reads configuration value
// from c by name and casts it to string.
//
// Returns "" if value can not be casted.
func StringSafe(c *Config, name string) string {
	return cast.ToString(c.Value(name))
}

// BoolSafe reads configuration value
// from c by name and casts it to bool.
//
// Returns false if value can not be casted.
func BoolSafe(c *Config, name string) bool {
	return cast.ToBool(c.Value(name))
}

// IntSafe reads configuration value
// from c by name and casts it to int64.
//
// Returns 0 if value can not be casted.
func IntSafe(c *Config, name string) int64 {
	return cast.ToInt64(c.Value(name))
}

// SizeInBytesSafe reads configuration value
// from c by name and casts it to size in bytes (uint64).
//
// The suffix can be single-letter (b, k, m, g, t) or with
// an additional b at the end. Spaces between the number and
// the suffix are allowed. All multipliers are power of 2.
//
// Returns 0 if a value can't be casted.
func SizeInBytesSafe(c *Config, name string) uint64 {
	s := StringSafe(c, name)
	return parseSizeInBytes(s)
}

// ModeSafe reads configuration value from c by name and parses it as octal
// permission bits like "0640". Integers are taken as is.
//
// Returns 0 if a value can't be parsed.
func ModeSafe(c *Config, name string) fs.FileMode {
	switch v := c.Value(name).(type) {
	case nil:
		return 0
	case string:
		m, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(v), "0o"), 8, 32)
		if err != nil {
			return 0
		}
		return fs.FileMode(m) & fs.ModePerm
	default:
		return fs.FileMode(cast.ToUint32(v)) & fs.ModePerm
	}
}

// safeMul returns size*multiplier.
// Returns 0 if overflow is detected.
func safeMul(size uint64, multiplier uint64) uint64 {
	hi, lo := bits.Mul64(size, multiplier)
	if hi != 0 {
		return 0
	}
	return lo
}

// parseSizeInBytes converts strings like 1GB or 12 mb into an unsigned integer number of bytes.
func parseSizeInBytes(sizeStr string) uint64 {
	sizeStr = strings.TrimSpace(sizeStr)
	lastChar := len(sizeStr) - 1
	multiplier := uint64(1)

	if lastChar > 0 {
		if sizeStr[lastChar] == 'b' || sizeStr[lastChar] == 'B' {
			lastChar--
		}
		if lastChar >= 0 {
			switch unicode.ToLower(rune(sizeStr[lastChar])) {
			case 'k':
				multiplier = 1 << 10
				sizeStr = strings.TrimSpace(sizeStr[:lastChar])
			case 'm':
				multiplier = 1 << 20
				sizeStr = strings.TrimSpace(sizeStr[:lastChar])
			case 'g':
				multiplier = 1 << 30
				sizeStr = strings.TrimSpace(sizeStr[:lastChar])
			case 't':
				multiplier = 1 << 40
				sizeStr = strings.TrimSpace(sizeStr[:lastChar])
			default:
				multiplier = 1
				sizeStr = strings.TrimSpace(sizeStr[:lastChar+1])
			}
		}
	}

	size := cast.ToUint64(sizeStr)
	return safeMul(size, multiplier)
}
