package filestorage

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"

	"github.com/nspcc-dev/filestorage/pkg/storage/common"
	"github.com/nspcc-dev/filestorage/pkg/storage/idpath"
)

// OpError describes a failed storage operation. Err wraps one of the common
// error kinds together with the underlying cause, so both can be checked with
// errors.Is.
type OpError struct {
	Op  string
	ID  idpath.ID
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.ID, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opError(op string, id idpath.ID, err error) error {
	return &OpError{Op: op, ID: id, Err: err}
}

// ioError wraps err into common.ErrIO unless it's already classified.
func ioError(err error) error {
	switch {
	case errors.Is(err, common.ErrIO),
		errors.Is(err, common.ErrNotFound),
		errors.Is(err, common.ErrDirectoryProvision),
		errors.Is(err, common.ErrUnsupportedAlgorithm):
		return err
	case errors.Is(err, syscall.ENOSPC):
		return fmt.Errorf("%w: %w", common.ErrNoSpace, err)
	default:
		return fmt.Errorf("%w: %w", common.ErrIO, err)
	}
}

// objectError is ioError reporting missing files as common.ErrNotFound.
func objectError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", common.ErrNotFound, err)
	}
	return ioError(err)
}
