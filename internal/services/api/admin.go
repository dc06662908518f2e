package api

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/chirpnest/chirpy/internal/obs"
)

const adminMetricsPage = `<html>
<body>
	<h1>Welcome, Chirpy Admin</h1>
	<p>Chirpy has been visited %d times!</p>
</body>
</html>`

func (h *Handler) handleAdminMetrics(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, adminMetricsPage, h.metrics.Hits())
}

// handleAdminReset wipes all users and zeroes the visit counter. It exists
// for local development only and is forbidden everywhere else.
func (h *Handler) handleAdminReset(w http.ResponseWriter, r *http.Request) {
	if h.env != "dev" {
		respondError(w, http.StatusForbidden, "reset is only allowed in dev")
		return
	}

	if err := h.users.DeleteAll(r.Context()); err != nil {
		h.respondErr(w, r, err)
		return
	}
	h.metrics.Reset()

	obs.WithTrace(r.Context(), h.log).Warn("dev reset", zap.String("env", h.env))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Hits reset to 0"))
}
