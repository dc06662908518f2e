package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/google/uuid"

	"github.com/chirpnest/chirpy/internal/auth"
)

type polkaWebhookRequest struct {
	Event string `json:"event"`
	Data  struct {
		UserID uuid.UUID `json:"user_id"`
	} `json:"data"`
}

const eventUserUpgraded = "user.upgraded"

func (h *Handler) handlePolkaWebhook(w http.ResponseWriter, r *http.Request) {
	key, err := auth.GetAPIKey(r.Header)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(h.polkaKey)) != 1 {
		respondError(w, http.StatusUnauthorized, "invalid api key")
		return
	}

	var req polkaWebhookRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondErr(w, r, err)
		return
	}

	// Only upgrade events matter; everything else is acknowledged and dropped.
	if req.Event != eventUserUpgraded {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.users.UpgradeToChirpyRed(r.Context(), req.Data.UserID); err != nil {
		h.respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
