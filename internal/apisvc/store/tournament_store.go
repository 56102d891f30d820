package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avvvet/arena-services/internal/apisvc/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TournamentStore struct {
	db *pgxpool.Pool
}

func NewTournamentStore(db *pgxpool.Pool) *TournamentStore {
	return &TournamentStore{db: db}
}

const tournamentColumns = `id, title, game, entry_fee, prize_pool, max_players, current_players, created_at, updated_at`

func (s *TournamentStore) Create(ctx context.Context, t models.Tournament) (*models.Tournament, error) {
	row := s.db.QueryRow(ctx, `
        INSERT INTO tournaments (title, game, entry_fee, prize_pool, max_players)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING `+tournamentColumns+`
    `, t.Title, t.Game, t.EntryFee, t.PrizePool, t.MaxPlayers)

	return scanTournament(row)
}

func (s *TournamentStore) GetByID(ctx context.Context, id int64) (*models.Tournament, error) {
	row := s.db.QueryRow(ctx, `
        SELECT `+tournamentColumns+`
        FROM tournaments
        WHERE id = $1
    `, id)

	return scanTournament(row)
}

func (s *TournamentStore) List(ctx context.Context) ([]*models.Tournament, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+tournamentColumns+`
        FROM tournaments
        ORDER BY created_at DESC, id DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	defer rows.Close()

	var tournaments []*models.Tournament
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return nil, err
		}
		tournaments = append(tournaments, t)
	}

	return tournaments, rows.Err()
}

// Update rewrites the descriptive fields. current_players is mutated
// only through Join.
func (s *TournamentStore) Update(ctx context.Context, t models.Tournament) (*models.Tournament, error) {
	row := s.db.QueryRow(ctx, `
        UPDATE tournaments
        SET title = $2, game = $3, entry_fee = $4, prize_pool = $5, max_players = $6, updated_at = now()
        WHERE id = $1
        RETURNING `+tournamentColumns+`
    `, t.ID, t.Title, t.Game, t.EntryFee, t.PrizePool, t.MaxPlayers)

	return scanTournament(row)
}

func (s *TournamentStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM tournaments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tournament: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Join registers the user in one transaction. The unique_tournament_user
// constraint turns a concurrent double join into a plain (false, nil),
// and the guarded counter increment keeps current_players equal to the
// participant row count under concurrent joins.
func (s *TournamentStore) Join(ctx context.Context, tournamentID, userID int64) (bool, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
        INSERT INTO tournament_players (tournament_id, user_id)
        VALUES ($1, $2)
        ON CONFLICT (tournament_id, user_id) DO NOTHING
    `, tournamentID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// invalid tournament or user reference
			return false, ErrNotFound
		}
		return false, fmt.Errorf("insert tournament player: %w", err)
	}

	if tag.RowsAffected() == 0 {
		// already joined
		return false, nil
	}

	var id int64
	err = tx.QueryRow(ctx, `
        UPDATE tournaments
        SET current_players = current_players + 1, updated_at = now()
        WHERE id = $1 AND current_players < max_players
        RETURNING id
    `, tournamentID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// tournament exists (the FK above held), so it is full;
			// rollback drops the participant row as well
			return false, ErrTournamentFull
		}
		return false, fmt.Errorf("increment player count: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit tx: %w", err)
	}

	return true, nil
}

func (s *TournamentStore) GetPlayers(ctx context.Context, tournamentID int64) ([]*models.TournamentPlayer, error) {
	rows, err := s.db.Query(ctx, `
        SELECT tournament_id, user_id, created_at
        FROM tournament_players
        WHERE tournament_id = $1
        ORDER BY created_at
    `, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament players: %w", err)
	}
	defer rows.Close()

	var players []*models.TournamentPlayer
	for rows.Next() {
		p := &models.TournamentPlayer{}
		if err := rows.Scan(&p.TournamentID, &p.UserID, &p.CreatedAt); err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	return players, rows.Err()
}

func scanTournament(row pgx.Row) (*models.Tournament, error) {
	t := &models.Tournament{}
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Game,
		&t.EntryFee,
		&t.PrizePool,
		&t.MaxPlayers,
		&t.CurrentPlayers,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}

	return t, nil
}
