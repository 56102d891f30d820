package comm

import (
	"time"
)

// Subjects used between apisvc and the settlement worker.
const (
	SubjectWithdrawal = "wallet.withdrawal"
	SubjectSettled    = "wallet.settled"
)

// WithdrawalEvent is published after a withdrawal commits with the
// ledger row still in pending status.
type WithdrawalEvent struct {
	TransactionID int64     `json:"transaction_id"`
	UserID        int64     `json:"user_id"`
	Amount        string    `json:"amount"`
	TRef          string    `json:"tref"`
	RequestedAt   time.Time `json:"requested_at"`
}

// SettledEvent reports the outcome of a settlement attempt.
type SettledEvent struct {
	TransactionID int64     `json:"transaction_id"`
	UserID        int64     `json:"user_id"`
	Status        string    `json:"status"`
	SettledAt     time.Time `json:"settled_at"`
}
