package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"

	"github.com/avvvet/arena-services/internal/apisvc/service"
)

type WalletMutationRequest struct {
	Amount        string `json:"amount"`
	PaymentID     string `json:"payment_id,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

func (h *Handler) GetWalletHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Message: "invalid user id", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	wallet, err := h.wallets.GetWallet(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "wallet", Code: http.StatusOK, Data: wallet})
}

func (h *Handler) DepositHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Message: "invalid user id", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	var req WalletMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.CreateResponse(w, Response{Message: "invalid request body", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		h.writeError(w, service.ErrInvalidAmount)
		return
	}

	wallet, txn, err := h.wallets.Deposit(r.Context(), userID, amount, req.PaymentID, req.PaymentMethod)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{
		Message: "deposit completed",
		Code:    http.StatusOK,
		Data: map[string]interface{}{
			"wallet":      wallet,
			"transaction": txn,
		},
	})
}

func (h *Handler) WithdrawHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Message: "invalid user id", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	var req WalletMutationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.CreateResponse(w, Response{Message: "invalid request body", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		h.writeError(w, service.ErrInvalidAmount)
		return
	}

	wallet, txn, err := h.wallets.Withdraw(r.Context(), userID, amount)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{
		Message: "withdrawal pending",
		Code:    http.StatusOK,
		Data: map[string]interface{}{
			"wallet":      wallet,
			"transaction": txn,
		},
	})
}
