package models

import (
	"time"
)

type GameSession struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Game      string     `json:"game"`
	Status    string     `json:"status"`
	Score     int64      `json:"score"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// GameSessionUpdate carries a partial update, nil fields are left untouched.
type GameSessionUpdate struct {
	Status  *string    `json:"status,omitempty"`
	Score   *int64     `json:"score,omitempty"`
	EndedAt *time.Time `json:"ended_at,omitempty"`
}
