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

type UserStore struct {
	db *pgxpool.Pool
}

func NewUserStore(db *pgxpool.Pool) *UserStore {
	return &UserStore{db: db}
}

// CreateUser inserts the user and its wallet row in one transaction.
// A username or email collision is reported as ErrDuplicate.
func (r *UserStore) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO users (username, email, password_hash)
        VALUES ($1, $2, $3)
        RETURNING user_id, is_admin, is_owner, created_at, updated_at;
    `

	u := user
	err = tx.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash).Scan(
		&u.UserId,
		&u.IsAdmin,
		&u.IsOwner,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	_, err = tx.Exec(ctx, `INSERT INTO wallets (user_id) VALUES ($1)`, u.UserId)
	if err != nil {
		return nil, fmt.Errorf("could not create wallet: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &u, nil
}

func (r *UserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRow(ctx, `
        SELECT user_id, username, email, password_hash, is_admin, is_owner, created_at, updated_at
        FROM users
        WHERE user_id = $1
    `, id)

	return scanUser(row)
}

func (r *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `
        SELECT user_id, username, email, password_hash, is_admin, is_owner, created_at, updated_at
        FROM users
        WHERE email = $1
    `, email)

	return scanUser(row)
}

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.UserId,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.IsAdmin,
		&u.IsOwner,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// GetProfile joins the user with its wallet, balances are read live.
func (r *UserStore) GetProfile(ctx context.Context, id int64) (*models.Profile, error) {
	p := &models.Profile{}
	err := r.db.QueryRow(ctx, `
        SELECT u.user_id, u.username, u.email, w.balance, w.bonus_balance, u.is_admin, u.is_owner
        FROM users u
        JOIN wallets w ON w.user_id = u.user_id
        WHERE u.user_id = $1
    `, id).Scan(
		&p.UserId,
		&p.Username,
		&p.Email,
		&p.Balance,
		&p.BonusBalance,
		&p.IsAdmin,
		&p.IsOwner,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

// UpdateUser applies the non-nil fields. Collisions with another user's
// username or email are reported as ErrDuplicate.
func (r *UserStore) UpdateUser(ctx context.Context, id int64, username, email *string) (*models.User, error) {
	row := r.db.QueryRow(ctx, `
        UPDATE users
        SET username   = COALESCE($2, username),
            email      = COALESCE($3, email),
            updated_at = now()
        WHERE user_id = $1
        RETURNING user_id, username, email, password_hash, is_admin, is_owner, created_at, updated_at
    `, id, username, email)

	u, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	return u, nil
}

func (r *UserStore) ListProfiles(ctx context.Context) ([]*models.Profile, error) {
	rows, err := r.db.Query(ctx, `
        SELECT u.user_id, u.username, u.email, w.balance, w.bonus_balance, u.is_admin, u.is_owner
        FROM users u
        JOIN wallets w ON w.user_id = u.user_id
        ORDER BY u.user_id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*models.Profile
	for rows.Next() {
		p := &models.Profile{}
		err := rows.Scan(
			&p.UserId,
			&p.Username,
			&p.Email,
			&p.Balance,
			&p.BonusBalance,
			&p.IsAdmin,
			&p.IsOwner,
		)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

// SetAdmin toggles the is_admin flag. Returns false when no such user
// exists, setting an already-set flag is a no-op that still returns true.
func (r *UserStore) SetAdmin(ctx context.Context, id int64, isAdmin bool) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE users
        SET is_admin = $2, updated_at = now()
        WHERE user_id = $1
    `, id, isAdmin)
	if err != nil {
		return false, fmt.Errorf("failed to set admin flag: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
