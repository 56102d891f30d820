package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TTypeDeposit    = "deposit"
	TTypeWithdrawal = "withdrawal"
	TTypeWin        = "win"
	TTypeLoss       = "loss"
	TTypeBonus      = "bonus"
)

const (
	TStatusPending   = "pending"
	TStatusCompleted = "completed"
	TStatusFailed    = "failed"
)

// Transaction is an append-only ledger entry. Rows are never updated
// except for the pending -> completed/failed status transition done by
// the settlement worker.
type Transaction struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	TType         string          `json:"ttype"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	TRef          string          `json:"tref"`
	PaymentID     string          `json:"payment_id,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
