package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/chirpnest/chirpy/internal/auth"
	"github.com/chirpnest/chirpy/internal/domain/user"
	"github.com/chirpnest/chirpy/internal/obs"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	user.User
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type accessTokenResponse struct {
	Token string `json:"token"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondErr(w, r, err)
		return
	}

	u, access, refresh, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	obs.WithTrace(r.Context(), h.log).Info("login", zap.String("user_id", u.ID.String()))
	respondJSON(w, http.StatusOK, loginResponse{User: *u, Token: access, RefreshToken: refresh})
}

func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	raw, err := auth.GetBearerToken(r.Header)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	access, err := h.auth.Refresh(r.Context(), raw)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, accessTokenResponse{Token: access})
}

func (h *Handler) handleRevoke(w http.ResponseWriter, r *http.Request) {
	raw, err := auth.GetBearerToken(r.Header)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	if err := h.auth.Revoke(r.Context(), raw); err != nil {
		h.respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
