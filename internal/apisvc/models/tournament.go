package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Tournament struct {
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	Game           string          `json:"game"`
	EntryFee       decimal.Decimal `json:"entry_fee"`
	PrizePool      decimal.Decimal `json:"prize_pool"`
	MaxPlayers     int             `json:"max_players"`
	CurrentPlayers int             `json:"current_players"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TournamentPlayer marks a user's registration, unique per
// (tournament_id, user_id) pair.
type TournamentPlayer struct {
	TournamentID int64     `json:"tournament_id"`
	UserID       int64     `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
}
