package api

import (
	"net/http"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the process-wide visit counter for the /app fileserver. The
// atomic counter backs the admin page and supports the dev reset; the
// prometheus counter mirrors it for scraping and stays monotonic.
type Metrics struct {
	hits      atomic.Int64
	hitsTotal prometheus.Counter
}

func NewMetrics() *Metrics {
	return newMetrics(prometheus.DefaultRegisterer)
}

func newMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		hitsTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "chirpy_fileserver_hits_total",
			Help: "Visits to the /app fileserver since process start.",
		}),
	}
}

func (m *Metrics) CountHits(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.hits.Add(1)
		m.hitsTotal.Inc()
		next.ServeHTTP(w, r)
	})
}

func (m *Metrics) Hits() int64 { return m.hits.Load() }

// Reset clears the admin counter only; prometheus counters are monotonic
// by contract.
func (m *Metrics) Reset() { m.hits.Store(0) }
