package storageconfig

import (
	"io/fs"

	"github.com/mitchellh/go-homedir"
	"github.com/nspcc-dev/filestorage/cmd/fstore/config"
	"github.com/nspcc-dev/filestorage/pkg/storage/digest"
	"github.com/nspcc-dev/filestorage/pkg/storage/filestorage"
)

const (
	subsection = "storage"

	// PermDefault is a default permission bits of stored files.
	PermDefault = 0o640

	// CompressionDefault is a default codec used by compress command.
	CompressionDefault = digest.ZIP
)

// Path returns the value of "path" config parameter
// from "storage" section with "~" expanded to the user's home directory.
//
// Returns empty string if the value is missing.
func Path(c *config.Config) (string, error) {
	p := config.StringSafe(c.Sub(subsection), "path")
	if p == "" {
		return "", nil
	}
	return homedir.Expand(p)
}

// MinCompressSize returns the value of "min_compress_size" config parameter
// from "storage" section.
//
// Returns filestorage.DefaultMinCompressSize if the value is missing or
// can't be parsed.
func MinCompressSize(c *config.Config) int64 {
	v := config.SizeInBytesSafe(c.Sub(subsection), "min_compress_size")
	if v > 0 && v <= 1<<62 {
		return int64(v)
	}
	return filestorage.DefaultMinCompressSize
}

// Perm returns the value of "permissions" config parameter
// from "storage" section.
//
// Returns PermDefault if the value is missing or invalid.
func Perm(c *config.Config) fs.FileMode {
	p := config.ModeSafe(c.Sub(subsection), "permissions")
	if p == 0 {
		p = PermDefault
	}
	return p
}

// NoSync returns the value of "no_sync" config parameter
// from "storage" section.
//
// Returns false if the value is missing or invalid.
func NoSync(c *config.Config) bool {
	return config.BoolSafe(c.Sub(subsection), "no_sync")
}

// Checksum returns the value of "checksum" config parameter
// from "storage" section.
//
// Returns filestorage.DefaultChecksum if the value is missing.
func Checksum(c *config.Config) string {
	if v := config.StringSafe(c.Sub(subsection), "checksum"); v != "" {
		return v
	}
	return filestorage.DefaultChecksum
}

// DedupHash returns the value of "dedup_hash" config parameter
// from "storage" section.
//
// Returns filestorage.DefaultDedupHash if the value is missing.
func DedupHash(c *config.Config) string {
	if v := config.StringSafe(c.Sub(subsection), "dedup_hash"); v != "" {
		return v
	}
	return filestorage.DefaultDedupHash
}

// Compression returns the value of "compression" config parameter
// from "storage" section.
//
// Returns CompressionDefault if the value is missing.
func Compression(c *config.Config) string {
	if v := config.StringSafe(c.Sub(subsection), "compression"); v != "" {
		return v
	}
	return CompressionDefault
}
