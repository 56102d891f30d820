package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"

	"github.com/avvvet/arena-services/internal/apisvc/models"
)

type TournamentRequest struct {
	Title      string `json:"title"`
	Game       string `json:"game"`
	EntryFee   string `json:"entry_fee"`
	PrizePool  string `json:"prize_pool"`
	MaxPlayers int    `json:"max_players"`
}

type JoinRequest struct {
	UserID int64 `json:"userId"`
}

func (h *Handler) ListTournamentsHandler(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.tournaments.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "tournaments", Code: http.StatusOK, Data: tournaments})
}

func (h *Handler) GetTournamentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Message: "invalid tournament id", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	t, err := h.tournaments.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "tournament", Code: http.StatusOK, Data: t})
}

func (h *Handler) CreateTournamentHandler(w http.ResponseWriter, r *http.Request) {
	t, ok := h.decodeTournament(w, r)
	if !ok {
		return
	}

	created, err := h.tournaments.Create(r.Context(), t)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "tournament created", Code: http.StatusCreated, Data: created})
}

func (h *Handler) UpdateTournamentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Message: "invalid tournament id", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	t, ok := h.decodeTournament(w, r)
	if !ok {
		return
	}
	t.ID = id

	updated, err := h.tournaments.Update(r.Context(), t)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "tournament updated", Code: http.StatusOK, Data: updated})
}

func (h *Handler) DeleteTournamentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Message: "invalid tournament id", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	if err := h.tournaments.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "tournament deleted", Code: http.StatusOK})
}

func (h *Handler) JoinTournamentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.CreateResponse(w, Response{Message: "invalid tournament id", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	var req JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.CreateResponse(w, Response{Message: "invalid request body", Code: http.StatusBadRequest, Error: err.Error()})
		return
	}

	joined, err := h.tournaments.Join(r.Context(), id, req.UserID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if !joined {
		h.CreateResponse(w, Response{
			Message: "already joined",
			Code:    http.StatusBadRequest,
			Error:   "already joined",
		})
		return
	}

	t, err := h.tournaments.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.CreateResponse(w, Response{Message: "joined", Code: http.StatusOK, Data: t})
}

func (h *Handler) decodeTournament(w http.ResponseWriter, r *http.Request) (models.Tournament, bool) {
	var req TournamentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.CreateResponse(w, Response{Message: "invalid request body", Code: http.StatusBadRequest, Error: err.Error()})
		return models.Tournament{}, false
	}

	entryFee := decimal.Zero
	if req.EntryFee != "" {
		fee, err := decimal.NewFromString(req.EntryFee)
		if err != nil {
			h.CreateResponse(w, Response{Message: "invalid entry fee", Code: http.StatusBadRequest, Error: err.Error()})
			return models.Tournament{}, false
		}
		entryFee = fee
	}

	prizePool := decimal.Zero
	if req.PrizePool != "" {
		pool, err := decimal.NewFromString(req.PrizePool)
		if err != nil {
			h.CreateResponse(w, Response{Message: "invalid prize pool", Code: http.StatusBadRequest, Error: err.Error()})
			return models.Tournament{}, false
		}
		prizePool = pool
	}

	return models.Tournament{
		Title:      req.Title,
		Game:       req.Game,
		EntryFee:   entryFee,
		PrizePool:  prizePool,
		MaxPlayers: req.MaxPlayers,
	}, true
}
