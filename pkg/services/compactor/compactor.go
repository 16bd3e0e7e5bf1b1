// Package compactor compresses many stored objects concurrently.
package compactor

import (
	"context"
	"fmt"
	"sync"

	"github.com/nspcc-dev/filestorage/pkg/storage/idpath"
	"github.com/nspcc-dev/filestorage/pkg/util"
	"go.uber.org/zap"
)

// Storage is an object storage able to compress objects in place.
type Storage interface {
	Compress(id idpath.ID, compression string) (bool, error)
}

// Result is the outcome of a single object compression.
type Result struct {
	ID         idpath.ID
	Compressed bool
	Err        error
}

// Compactor schedules object compressions on a worker pool.
type Compactor struct {
	*cfg
}

type cfg struct {
	log      *zap.Logger
	pool     util.WorkerPool
	progress func(Result)
}

// Option is a Compactor's option.
type Option func(*cfg)

// WithLogger returns option to specify Compactor's logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *cfg) {
		c.log = l
	}
}

// WithWorkerPool returns option to run compressions on the pool. Objects are
// compressed one by one in the caller's routine otherwise.
func WithWorkerPool(p util.WorkerPool) Option {
	return func(c *cfg) {
		c.pool = p
	}
}

// WithProgress returns option to report every finished compression. The
// callback is never called concurrently.
func WithProgress(f func(Result)) Option {
	return func(c *cfg) {
		c.progress = f
	}
}

// New creates a Compactor.
func New(opts ...Option) *Compactor {
	c := &cfg{
		log:      zap.NewNop(),
		pool:     util.NewPseudoWorkerPool(),
		progress: func(Result) {},
	}
	for i := range opts {
		opts[i](c)
	}
	return &Compactor{cfg: c}
}

// Run compresses objects with the named codec and returns results in the
// order of ids. Once ctx is done no more compressions are started, the
// remaining objects get ctx.Err() as a result. Compressions already started
// run to completion.
func (c *Compactor) Run(ctx context.Context, s Storage, ids []idpath.ID, compression string) []Result {
	var (
		wg      sync.WaitGroup
		mtx     sync.Mutex
		results = make([]Result, len(ids))
	)

	finish := func(i int, res Result) {
		mtx.Lock()
		results[i] = res
		c.progress(res)
		mtx.Unlock()
	}

	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			finish(i, Result{ID: id, Err: err})
			continue
		}

		wg.Add(1)
		err := c.pool.Submit(func() {
			defer wg.Done()

			ok, err := s.Compress(id, compression)
			if err != nil {
				c.log.Warn("can't compress object",
					zap.Stringer("id", id),
					zap.String("compression", compression),
					zap.Error(err))
			}
			finish(i, Result{ID: id, Compressed: ok, Err: err})
		})
		if err != nil {
			wg.Done()
			finish(i, Result{ID: id, Err: fmt.Errorf("submit task: %w", err)})
		}
	}

	wg.Wait()
	return results
}
