package metrics

import (
	"errors"
	"time"

	errs "github.com/NastyaGoryachaya/fav-crypto/internal/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	ResultOK           = "ok"
	ResultNetworkError = "network_error"
	ResultParseError   = "parse_error"
	ResultOtherError   = "error"
)

// Fetch - метрики запросов к API цен.
type Fetch struct {
	Registry *prometheus.Registry

	total    *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewFetch - метрики на собственном реестре (плюс go/process коллекторы).
func NewFetch() *Fetch {
	m := &Fetch{
		Registry: prometheus.NewRegistry(),
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "favcrypto",
			Name:      "fetch_total",
			Help:      "Price API fetches by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "favcrypto",
			Name:      "fetch_duration_seconds",
			Help:      "Price API fetch latency.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	m.Registry.MustRegister(
		m.total,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe - учитывает одну выборку цен.
func (m *Fetch) Observe(started time.Time, err error) {
	if m == nil {
		return
	}
	m.duration.Observe(time.Since(started).Seconds())
	m.total.WithLabelValues(Result(err)).Inc()
}

// Result - метка result для ошибки.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, errs.ErrNetwork):
		return ResultNetworkError
	case errors.Is(err, errs.ErrParse):
		return ResultParseError
	default:
		return ResultOtherError
	}
}
