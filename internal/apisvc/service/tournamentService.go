package service

import (
	"context"
	"strings"

	"github.com/avvvet/arena-services/internal/apisvc/models"
)

type TournamentStore interface {
	Create(ctx context.Context, t models.Tournament) (*models.Tournament, error)
	GetByID(ctx context.Context, id int64) (*models.Tournament, error)
	List(ctx context.Context) ([]*models.Tournament, error)
	Update(ctx context.Context, t models.Tournament) (*models.Tournament, error)
	Delete(ctx context.Context, id int64) error
	Join(ctx context.Context, tournamentID, userID int64) (bool, error)
	GetPlayers(ctx context.Context, tournamentID int64) ([]*models.TournamentPlayer, error)
}

type TournamentService struct {
	store TournamentStore
}

func NewTournamentService(store TournamentStore) *TournamentService {
	return &TournamentService{store: store}
}

func (s *TournamentService) Create(ctx context.Context, t models.Tournament) (*models.Tournament, error) {
	if strings.TrimSpace(t.Title) == "" || strings.TrimSpace(t.Game) == "" || t.MaxPlayers <= 0 {
		return nil, ErrMissingFields
	}
	return s.store.Create(ctx, t)
}

func (s *TournamentService) GetByID(ctx context.Context, id int64) (*models.Tournament, error) {
	return s.store.GetByID(ctx, id)
}

func (s *TournamentService) List(ctx context.Context) ([]*models.Tournament, error) {
	return s.store.List(ctx)
}

func (s *TournamentService) Update(ctx context.Context, t models.Tournament) (*models.Tournament, error) {
	if strings.TrimSpace(t.Title) == "" || strings.TrimSpace(t.Game) == "" || t.MaxPlayers <= 0 {
		return nil, ErrMissingFields
	}
	return s.store.Update(ctx, t)
}

func (s *TournamentService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// Join reports true when the user was registered by this call and false
// when the registration already existed. A full tournament is an error,
// a repeat join is not.
func (s *TournamentService) Join(ctx context.Context, tournamentID, userID int64) (bool, error) {
	return s.store.Join(ctx, tournamentID, userID)
}

func (s *TournamentService) GetPlayers(ctx context.Context, tournamentID int64) ([]*models.TournamentPlayer, error) {
	return s.store.GetPlayers(ctx, tournamentID)
}
