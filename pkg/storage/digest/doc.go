/*
Package digest provides named hash functions and compression codecs used by
the file storage.

Algorithms are looked up by case-sensitive string keys. A [Registry] is filled
once on construction and never changes afterwards, so it can be shared by any
number of goroutines without locking. Unknown names are always reported with
[common.ErrUnsupportedAlgorithm].

Hashers produce lowercase hex strings. Built-in ones are:
  - CRC32: IEEE polynomial, hex without leading zeros (cheap integrity checksum)
  - SHA256: default deduplication hash
  - SHA3-256, BLAKE3: alternative cryptographic deduplication hashes
  - XXH64: fast non-cryptographic hash, zero-padded to 16 digits
  - TZ: homomorphic Tillich-Zemor hash

Codecs compress a single logical entry into a container and decompress it back
as a sequence of entries. Built-in ones are:
  - ZIP: deflated zip archive with one entry named after the source file
  - GZIP: gzip stream with the source file name in its header
  - ZSTD, LZ4, SNAPPY: framed streams carrying one unnamed entry
*/
package digest
