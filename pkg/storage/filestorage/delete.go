package filestorage

import (
	"os"
	"time"

	"github.com/nspcc-dev/filestorage/pkg/storage/common"
	"github.com/nspcc-dev/filestorage/pkg/storage/idpath"
	"go.uber.org/zap"
)

// Delete removes object from the storage. Returns common.ErrNotFound if there
// is no such object. Emptied directories are left in place.
func (t *FileStorage) Delete(id idpath.ID) error {
	var (
		start = time.Now()
		err   error
	)
	defer func() { t.observe("Delete", start, err) }()

	if t.readOnly {
		err = opError("delete", id, common.ErrReadOnly)
		return err
	}

	p := t.treePath(id)
	if err = os.Remove(p); err != nil {
		err = opError("delete", id, objectError(err))
		return err
	}

	t.log.Debug("object removed", zap.Stringer("id", id), zap.String("path", p))
	return nil
}
