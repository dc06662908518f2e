package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler exposes the default prometheus registry. Mounted on the
// main mux at /metrics.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
