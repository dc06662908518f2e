package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/chirpnest/chirpy/internal/auth"
	"github.com/chirpnest/chirpy/internal/domain/chirp"
	"github.com/chirpnest/chirpy/internal/domain/user"
	"github.com/chirpnest/chirpy/internal/obs"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, code int, msg string) {
	respondJSON(w, code, errorResponse{Error: msg})
}

func decodeJSON(r *http.Request, into any) error {
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		return errBadBody
	}
	return nil
}

var errBadBody = errors.New("invalid request body")

// respondErr maps error kinds to status codes. Authentication failures stay
// deliberately undifferentiated on the wire; detail goes to the server log
// only.
func (h *Handler) respondErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errBadBody),
		errors.Is(err, auth.ErrValidation),
		errors.Is(err, auth.ErrWeakPassword):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMalformedAuthHeader):
		obs.WithTrace(r.Context(), h.log).Info("auth denied", zap.Error(err))
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, user.ErrNotFound), errors.Is(err, chirp.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		obs.WithTrace(r.Context(), h.log).Error("internal error", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "something went wrong")
	}
}
