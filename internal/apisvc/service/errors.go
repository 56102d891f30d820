package service

import (
	"errors"
)

var (
	ErrInvalidAmount      = errors.New("amount must be a positive decimal")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("missing required fields")
)
