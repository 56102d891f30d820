package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
)

type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

func (h *Handler) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Message: "invalid user id", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	profile, err := h.users.GetProfile(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "profile", Code: http.StatusOK, Data: profile})
}

func (h *Handler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Message: "invalid user id", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.CreateResponse(w, Response{Message: "invalid request body", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), userID, req.Username, req.Email)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "profile updated", Code: http.StatusOK, Data: user})
}
