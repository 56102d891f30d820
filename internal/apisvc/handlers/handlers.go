package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/avvvet/arena-services/internal/apisvc/service"
	"github.com/avvvet/arena-services/internal/apisvc/store"

	"github.com/go-chi/jwtauth"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	tokenAuth    *jwtauth.JWTAuth
	users        *service.UserService
	wallets      *service.WalletService
	tournaments  *service.TournamentService
	transactions *service.TransactionService
	sessions     *service.SessionService
}

func NewHandler(users *service.UserService, wallets *service.WalletService,
	tournaments *service.TournamentService, transactions *service.TransactionService,
	sessions *service.SessionService) *Handler {
	return &Handler{
		users:        users,
		wallets:      wallets,
		tournaments:  tournaments,
		transactions: transactions,
		sessions:     sessions,
	}
}

type Response struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error,omitempty"`
}

func (rs *Handler) CreateResponse(w http.ResponseWriter, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Code)

	json.NewEncoder(w).Encode(rsp)
}

// writeError maps the service/store error taxonomy to HTTP statuses.
// Unexpected errors are logged and answered with a generic message.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var code int
	switch {
	case errors.Is(err, store.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInsufficientFunds),
		errors.Is(err, store.ErrTournamentFull),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrMissingFields):
		code = http.StatusBadRequest
	default:
		log.Errorf("internal error: %v", err)
		h.CreateResponse(w, Response{
			Message: "internal server error",
			Code:    http.StatusInternalServerError,
			Error:   "internal server error",
		})
		return
	}

	h.CreateResponse(w, Response{Message: err.Error(), Code: code, Error: err.Error()})
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	rsp := Response{
		Message: "api service is running at port " + os.Getenv("API_SERVICE_PORT"),
		Code:    200,
		Data:    nil,
	}
	json.NewEncoder(w).Encode(rsp)
}
