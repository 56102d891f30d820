package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/avvvet/arena-services/internal/apisvc/models"
)

type CreateSessionRequest struct {
	UserID int64  `json:"user_id"`
	Game   string `json:"game"`
}

func (h *Handler) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.CreateResponse(w, Response{Message: "invalid request body", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	session, err := h.sessions.Create(r.Context(), req.UserID, req.Game)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "session created", Code: http.StatusCreated, Data: session})
}

func (h *Handler) UpdateSessionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Message: "invalid session id", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	var upd models.GameSessionUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		h.CreateResponse(w, Response{Message: "invalid request body", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	session, err := h.sessions.Update(r.Context(), id, upd)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "session updated", Code: http.StatusOK, Data: session})
}

func (h *Handler) ListUserSessionsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Message: "invalid user id", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	sessions, err := h.sessions.ListByUser(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "sessions", Code: http.StatusOK, Data: sessions})
}
