package store

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("duplicate record")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrTournamentFull    = errors.New("tournament is full")
)
