/*
Package filestorage implements a storage of opaque binary objects addressed by
unsigned 64-bit identifiers.

Each object is kept as a single file in a sharded directory tree (see
[idpath] for the layout). Objects are written as is, checksum and deduplication
hash of the data are calculated on every write with algorithms from the
[digest.Registry]. Stored files can be compressed in place later on: an
object is compressed into a temporary sibling file first, which then replaces
the original one with an atomic rename, so a crash at any moment leaves either
the original or the complete compressed file on disk. The storage doesn't
remember whether and how an object was compressed, readers must pass the right
codec name themselves.

There is no index, cache or per-object locking. Operations on different
objects are independent, concurrent modifications of the same object are
resolved by the filesystem and the last rename wins.

The object state machine is:

	Absent --Write--> Plain
	Plain --Compress(size > threshold)--> Compressed
	Plain --Compress(size <= threshold)--> Plain
	Plain, Compressed --Update--> Plain
	Plain, Compressed --Delete--> Absent
*/
package filestorage
