package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
)

func (h *Handler) ListUserTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Message: "invalid user id", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	entries, err := h.transactions.ListByUser(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "transactions", Code: http.StatusOK, Data: entries})
}
