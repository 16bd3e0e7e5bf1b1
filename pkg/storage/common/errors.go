package common

import "errors"

// ErrInvalidIdentifier is returned when an identifier can not be represented
// as an unsigned 64-bit integer (negative, too large or malformed).
var ErrInvalidIdentifier = errors.New("invalid identifier")

// ErrUnsupportedAlgorithm is returned when a checksum, dedup hash, compression
// or text encoding name is not known. It is always reported before any
// filesystem side effect takes place.
var ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

// ErrNotFound MUST be returned when an operation targets a missing object.
var ErrNotFound = errors.New("object not found")

// ErrDirectoryProvision is returned when a required directory can not be
// created.
var ErrDirectoryProvision = errors.New("can't provision directory")

// ErrIO is returned for generic read, write and rename failures.
var ErrIO = errors.New("i/o failure")

// ErrNoSpace MUST be returned when there is no space to put an object on the
// device. It is an ErrIO.
var ErrNoSpace = &noSpaceError{}

type noSpaceError struct{}

func (*noSpaceError) Error() string { return "no free space" }

func (*noSpaceError) Is(target error) bool { return target == ErrIO }

// ErrReadOnly MUST be returned for modifying operations when the storage was opened
// in readonly mode.
var ErrReadOnly = errors.New("opened as read-only")
