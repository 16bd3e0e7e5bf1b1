package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	storageSubsystem = "storage"

	methodLabelKey  = "method"
	successLabelKey = "success"
	codecLabelKey   = "codec"
)

type storageMetrics struct {
	methodDuration *prometheus.HistogramVec

	compressedObjects *prometheus.CounterVec
	compressedSize    *prometheus.CounterVec
	savedSize         *prometheus.CounterVec
}

func newStorageMetrics() storageMetrics {
	var (
		methodDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: storageSubsystem,
			Name:      "method_duration_seconds",
			Help:      "Storage operations handling time",
		}, []string{methodLabelKey, successLabelKey})

		compressedObjects = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: storageSubsystem,
			Name:      "compressed_objects_total",
			Help:      "Number of objects compressed in place",
		}, []string{codecLabelKey})

		compressedSize = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: storageSubsystem,
			Name:      "compressed_bytes_total",
			Help:      "Size of objects before compression",
		}, []string{codecLabelKey})

		savedSize = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: storageSubsystem,
			Name:      "saved_bytes_total",
			Help:      "Disk space freed by compression",
		}, []string{codecLabelKey})
	)
	return storageMetrics{
		methodDuration:    methodDuration,
		compressedObjects: compressedObjects,
		compressedSize:    compressedSize,
		savedSize:         savedSize,
	}
}

func (m storageMetrics) register(reg prometheus.Registerer) {
	reg.MustRegister(m.methodDuration)
	reg.MustRegister(m.compressedObjects)
	reg.MustRegister(m.compressedSize)
	reg.MustRegister(m.savedSize)
}

func (m storageMetrics) AddMethodDuration(method string, success bool, d time.Duration) {
	m.methodDuration.With(prometheus.Labels{
		methodLabelKey:  method,
		successLabelKey: strconv.FormatBool(success),
	}).Observe(d.Seconds())
}

func (m storageMetrics) AddCompressed(codec string, before, after int64) {
	labels := prometheus.Labels{codecLabelKey: codec}

	m.compressedObjects.With(labels).Inc()
	m.compressedSize.With(labels).Add(float64(before))
	if saved := before - after; saved > 0 {
		m.savedSize.With(labels).Add(float64(saved))
	}
}
