package service

import (
	"context"
	"strings"

	"github.com/avvvet/arena-services/internal/apisvc/models"
)

type SessionStore interface {
	Create(ctx context.Context, userID int64, game string) (*models.GameSession, error)
	Update(ctx context.Context, id int64, upd models.GameSessionUpdate) (*models.GameSession, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.GameSession, error)
}

type SessionService struct {
	store SessionStore
}

func NewSessionService(store SessionStore) *SessionService {
	return &SessionService{store: store}
}

func (s *SessionService) Create(ctx context.Context, userID int64, game string) (*models.GameSession, error) {
	if strings.TrimSpace(game) == "" {
		return nil, ErrMissingFields
	}
	return s.store.Create(ctx, userID, game)
}

func (s *SessionService) Update(ctx context.Context, id int64, upd models.GameSessionUpdate) (*models.GameSession, error) {
	return s.store.Update(ctx, id, upd)
}

func (s *SessionService) ListByUser(ctx context.Context, userID int64) ([]*models.GameSession, error) {
	return s.store.ListByUser(ctx, userID)
}
