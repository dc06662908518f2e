package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/chirpnest/chirpy/internal/domain/chirp"
)

type chirpRequest struct {
	Body string `json:"body"`
}

func (h *Handler) handleCreateChirp(w http.ResponseWriter, r *http.Request) {
	userID, err := h.bearerUserID(r)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	var req chirpRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondErr(w, r, err)
		return
	}
	if req.Body == "" {
		respondError(w, http.StatusBadRequest, "chirp body is required")
		return
	}
	if len(req.Body) > chirp.MaxBodyLen {
		respondError(w, http.StatusBadRequest, "Chirp is too long")
		return
	}

	c := &chirp.Chirp{Body: cleanBody(req.Body), UserID: userID}
	if err := h.chirps.Create(r.Context(), c); err != nil {
		h.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleListChirps(w http.ResponseWriter, r *http.Request) {
	var authorID *uuid.UUID
	if s := r.URL.Query().Get("author_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid author_id")
			return
		}
		authorID = &id
	}

	order := chirp.SortAsc
	if r.URL.Query().Get("sort") == string(chirp.SortDesc) {
		order = chirp.SortDesc
	}

	list, err := h.chirps.List(r.Context(), authorID, order)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	if list == nil {
		list = []*chirp.Chirp{}
	}
	respondJSON(w, http.StatusOK, list)
}

func (h *Handler) handleGetChirp(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("chirpID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid chirp id")
		return
	}

	c, err := h.chirps.GetByID(r.Context(), id)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteChirp(w http.ResponseWriter, r *http.Request) {
	userID, err := h.bearerUserID(r)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}

	id, err := uuid.Parse(r.PathValue("chirpID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid chirp id")
		return
	}

	c, err := h.chirps.GetByID(r.Context(), id)
	if err != nil {
		h.respondErr(w, r, err)
		return
	}
	if c.UserID != userID {
		respondError(w, http.StatusForbidden, "not your chirp")
		return
	}

	if err := h.chirps.Delete(r.Context(), id); err != nil {
		h.respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
