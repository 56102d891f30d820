package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
	"github.com/shopspring/decimal"

	"github.com/avvvet/arena-services/internal/apisvc/service"
)

// adminOnly guards the admin route group with the is_admin token claim.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			h.CreateResponse(w, Response{Message: "unauthorized", Code: http.StatusUnauthorized, Error: "unauthorized"})
			return
		}

		isAdmin, _ := claims["is_admin"].(bool)
		if !isAdmin {
			h.CreateResponse(w, Response{Message: "unauthorized", Code: http.StatusUnauthorized, Error: "unauthorized"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "users", Code: http.StatusOK, Data: profiles})
}

func (h *Handler) MakeAdminHandler(w http.ResponseWriter, r *http.Request) {
	h.setAdmin(w, r, true)
}

func (h *Handler) RemoveAdminHandler(w http.ResponseWriter, r *http.Request) {
	h.setAdmin(w, r, false)
}

func (h *Handler) setAdmin(w http.ResponseWriter, r *http.Request, isAdmin bool) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Message: "invalid user id", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	var existed bool
	if isAdmin {
		existed, err = h.users.MakeAdmin(r.Context(), userID)
	} else {
		existed, err = h.users.RemoveAdmin(r.Context(), userID)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	if !existed {
		h.CreateResponse(w, Response{Message: "user not found", Code: http.StatusNotFound, Error: "user not found"})
		return
	}

	h.CreateResponse(w, Response{Message: "admin role updated", Code: http.StatusOK})
}

type RecordResultRequest struct {
	TType  string `json:"ttype"`
	Amount string `json:"amount"`
	Ref    string `json:"ref,omitempty"`
}

// RecordResultHandler writes a win, loss or bonus ledger entry against
// a user's wallet.
func (h *Handler) RecordResultHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Message: "invalid user id", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	var req RecordResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.CreateResponse(w, Response{Message: "invalid request body", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		h.writeError(w, service.ErrInvalidAmount)
		return
	}

	wallet, txn, err := h.wallets.RecordResult(r.Context(), userID, req.TType, amount, req.Ref)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{
		Message: "result recorded",
		Code:    http.StatusOK,
		Data: map[string]interface{}{
			"wallet":      wallet,
			"transaction": txn,
		},
	})
}

func (h *Handler) ListAllTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := h.transactions.ListAll(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "transactions", Code: http.StatusOK, Data: entries})
}
