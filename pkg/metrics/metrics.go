package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "filestorage"

// StorageMetrics collects metrics of a file storage instance. It implements
// filestorage.Metrics.
type StorageMetrics struct {
	storageMetrics
}

// NewStorageMetrics creates storage metrics and registers them together with
// the version gauge in reg.
func NewStorageMetrics(reg prometheus.Registerer, version string) *StorageMetrics {
	storage := newStorageMetrics()
	storage.register(reg)

	registerVersionMetric(reg, namespace, version)

	return &StorageMetrics{
		storageMetrics: storage,
	}
}
