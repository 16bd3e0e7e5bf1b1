package filestorage

import "time"

// Metrics collects storage operation statistics.
type Metrics interface {
	// AddMethodDuration registers a finished call of the named method.
	AddMethodDuration(method string, success bool, d time.Duration)
	// AddCompressed registers a successful in-place compression of an
	// object from before to after bytes.
	AddCompressed(codec string, before, after int64)
}

type noopMetrics struct{}

func (noopMetrics) AddMethodDuration(string, bool, time.Duration) {}

func (noopMetrics) AddCompressed(string, int64, int64) {}

func (t *FileStorage) observe(method string, start time.Time, err error) {
	t.metrics.AddMethodDuration(method, err == nil, time.Since(start))
}
