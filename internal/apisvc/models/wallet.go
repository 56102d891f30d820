package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Wallet struct {
	UserId       int64           `json:"user_id"`
	Balance      decimal.Decimal `json:"balance"`
	BonusBalance decimal.Decimal `json:"bonus_balance"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
