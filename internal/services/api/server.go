package api

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/chirpnest/chirpy/internal/auth"
	"github.com/chirpnest/chirpy/internal/domain/chirp"
	"github.com/chirpnest/chirpy/internal/domain/user"
	"github.com/chirpnest/chirpy/internal/obs"
	"github.com/google/uuid"
)

// Handler owns the HTTP surface. All authentication decisions are delegated
// to the auth usecase; this layer only shapes JSON and maps error kinds to
// status codes.
type Handler struct {
	log      *zap.Logger
	auth     *auth.Usecase
	users    user.Repo
	chirps   chirp.Repo
	metrics  *Metrics
	env      string
	polkaKey string
	appDir   string
	ready    func(context.Context) error
}

type Opts struct {
	Logger   *zap.Logger
	Metrics  *Metrics
	Env      string
	PolkaKey string
	AppDir   string

	// Ready is polled by the healthz endpoint; nil means always ready.
	Ready func(context.Context) error
}

func NewHandler(uc *auth.Usecase, users user.Repo, chirps chirp.Repo, o Opts) *Handler {
	log := o.Logger
	if log == nil {
		log, _ = zap.NewProduction()
	}
	m := o.Metrics
	if m == nil {
		m = NewMetrics()
	}
	appDir := o.AppDir
	if appDir == "" {
		appDir = "./app"
	}
	return &Handler{
		log:      log,
		auth:     uc,
		users:    users,
		chirps:   chirps,
		metrics:  m,
		env:      o.Env,
		polkaKey: o.PolkaKey,
		appDir:   appDir,
		ready:    o.Ready,
	}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/app/", h.metrics.CountHits(http.StripPrefix("/app", http.FileServer(http.Dir(h.appDir)))))

	mux.HandleFunc("GET /api/healthz", h.handleHealthz)

	mux.HandleFunc("POST /api/users", h.handleCreateUser)
	mux.HandleFunc("PUT /api/users", h.handleUpdateUser)

	mux.HandleFunc("POST /api/login", h.handleLogin)
	mux.HandleFunc("POST /api/refresh", h.handleRefresh)
	mux.HandleFunc("POST /api/revoke", h.handleRevoke)

	mux.HandleFunc("POST /api/chirps", h.handleCreateChirp)
	mux.HandleFunc("GET /api/chirps", h.handleListChirps)
	mux.HandleFunc("GET /api/chirps/{chirpID}", h.handleGetChirp)
	mux.HandleFunc("DELETE /api/chirps/{chirpID}", h.handleDeleteChirp)

	mux.HandleFunc("POST /api/polka/webhooks", h.handlePolkaWebhook)

	mux.HandleFunc("GET /admin/metrics", h.handleAdminMetrics)
	mux.HandleFunc("POST /admin/reset", h.handleAdminReset)

	mux.Handle("/metrics", obs.MetricsHandler())

	return mux
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil {
		if err := h.ready(r.Context()); err != nil {
			obs.WithTrace(r.Context(), h.log).Warn("healthz", zap.Error(err))
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)
			return
		}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(http.StatusText(http.StatusOK)))
}

// bearerUserID authenticates the request from its Authorization header.
func (h *Handler) bearerUserID(r *http.Request) (uuid.UUID, error) {
	token, err := auth.GetBearerToken(r.Header)
	if err != nil {
		return uuid.Nil, err
	}
	return h.auth.Authenticate(token)
}
