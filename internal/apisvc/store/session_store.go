package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avvvet/arena-services/internal/apisvc/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionStore struct {
	db *pgxpool.Pool
}

func NewSessionStore(db *pgxpool.Pool) *SessionStore {
	return &SessionStore{db: db}
}

const sessionColumns = `id, user_id, game, status, score, started_at, ended_at, created_at, updated_at`

func (s *SessionStore) Create(ctx context.Context, userID int64, game string) (*models.GameSession, error) {
	row := s.db.QueryRow(ctx, `
        INSERT INTO game_sessions (user_id, game)
        VALUES ($1, $2)
        RETURNING `+sessionColumns+`
    `, userID, game)

	return scanSession(row)
}

// Update applies the non-nil fields of upd, the rest keep their values.
func (s *SessionStore) Update(ctx context.Context, id int64, upd models.GameSessionUpdate) (*models.GameSession, error) {
	row := s.db.QueryRow(ctx, `
        UPDATE game_sessions
        SET status     = COALESCE($2, status),
            score      = COALESCE($3, score),
            ended_at   = COALESCE($4, ended_at),
            updated_at = now()
        WHERE id = $1
        RETURNING `+sessionColumns+`
    `, id, upd.Status, upd.Score, upd.EndedAt)

	return scanSession(row)
}

func (s *SessionStore) ListByUser(ctx context.Context, userID int64) ([]*models.GameSession, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+sessionColumns+`
        FROM game_sessions
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list game sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.GameSession
	for rows.Next() {
		gs, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, gs)
	}

	return sessions, rows.Err()
}

func scanSession(row pgx.Row) (*models.GameSession, error) {
	gs := &models.GameSession{}
	err := row.Scan(
		&gs.ID,
		&gs.UserID,
		&gs.Game,
		&gs.Status,
		&gs.Score,
		&gs.StartedAt,
		&gs.EndedAt,
		&gs.CreatedAt,
		&gs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get game session: %w", err)
	}

	return gs, nil
}
