package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.CreateResponse(w, Response{Message: "invalid request body", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	user, err := h.users.Signup(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{
		Message: "user created",
		Code:    http.StatusCreated,
		Data:    user,
	})
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.CreateResponse(w, Response{Message: "invalid request body", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	profile, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}

	expirationTime := time.Now().Add(7 * 24 * time.Hour).Unix()
	_, tokenString, err := h.tokenAuth.Encode(map[string]interface{}{
		"user_id":  profile.UserId,
		"is_admin": profile.IsAdmin,
		"exp":      expirationTime,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{
		Message: "login ok",
		Code:    http.StatusOK,
		Data: map[string]interface{}{
			"profile": profile,
			"token":   tokenString,
		},
	})
}
