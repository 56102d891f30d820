package models

import (
	"github.com/shopspring/decimal"
)

// Profile is a read model joining users with their wallet. The wallet
// table stays the single source of truth for balances, nothing here is
// stored separately.
type Profile struct {
	UserId       int64           `json:"user_id"`
	Username     string          `json:"username"`
	Email        string          `json:"email"`
	Balance      decimal.Decimal `json:"wallet_balance"`
	BonusBalance decimal.Decimal `json:"bonus_balance"`
	IsAdmin      bool            `json:"is_admin"`
	IsOwner      bool            `json:"is_owner"`
}
