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

type WalletStore struct {
	db *pgxpool.Pool
}

func NewWalletStore(db *pgxpool.Pool) *WalletStore {
	return &WalletStore{db: db}
}

func (s *WalletStore) GetWallet(ctx context.Context, userID int64) (*models.Wallet, error) {
	w := &models.Wallet{}
	err := s.db.QueryRow(ctx, `
        SELECT user_id, balance, bonus_balance, updated_at
        FROM wallets
        WHERE user_id = $1
    `, userID).Scan(
		&w.UserId,
		&w.Balance,
		&w.BonusBalance,
		&w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	return w, nil
}

// Credit adds entry.Amount to the balance and appends the ledger row,
// both inside one transaction. The balance write is an atomic arithmetic
// update, never a read-modify-write of a cached value.
func (s *WalletStore) Credit(ctx context.Context, entry models.Transaction) (*models.Wallet, *models.Transaction, error) {
	return s.apply(ctx, entry, `
        UPDATE wallets
        SET balance = balance + $2, updated_at = now()
        WHERE user_id = $1
        RETURNING user_id, balance, bonus_balance, updated_at
    `)
}

// CreditBonus is Credit against the bonus balance.
func (s *WalletStore) CreditBonus(ctx context.Context, entry models.Transaction) (*models.Wallet, *models.Transaction, error) {
	return s.apply(ctx, entry, `
        UPDATE wallets
        SET bonus_balance = bonus_balance + $2, updated_at = now()
        WHERE user_id = $1
        RETURNING user_id, balance, bonus_balance, updated_at
    `)
}

// Debit subtracts entry.Amount, guarded so the balance can never go
// negative. A wallet that exists but cannot cover the amount yields
// ErrInsufficientFunds and no ledger row.
func (s *WalletStore) Debit(ctx context.Context, entry models.Transaction) (*models.Wallet, *models.Transaction, error) {
	return s.apply(ctx, entry, `
        UPDATE wallets
        SET balance = balance - $2, updated_at = now()
        WHERE user_id = $1 AND balance >= $2
        RETURNING user_id, balance, bonus_balance, updated_at
    `)
}

func (s *WalletStore) apply(ctx context.Context, entry models.Transaction, update string) (*models.Wallet, *models.Transaction, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	w := &models.Wallet{}
	err = tx.QueryRow(ctx, update, entry.UserID, entry.Amount).Scan(
		&w.UserId,
		&w.Balance,
		&w.BonusBalance,
		&w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// guarded update matched nothing: missing wallet or short balance
			var exists bool
			err = tx.QueryRow(ctx,
				`SELECT EXISTS(SELECT 1 FROM wallets WHERE user_id = $1)`,
				entry.UserID,
			).Scan(&exists)
			if err != nil {
				return nil, nil, fmt.Errorf("wallet existence check: %w", err)
			}
			if exists {
				return nil, nil, ErrInsufficientFunds
			}
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("update balance: %w", err)
	}

	t := entry
	err = tx.QueryRow(ctx, `
        INSERT INTO transactions (user_id, ttype, amount, status, tref, payment_id, payment_method)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `, entry.UserID, entry.TType, entry.Amount, entry.Status,
		entry.TRef, entry.PaymentID, entry.PaymentMethod,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// tref already used, the whole mutation rolls back
			return nil, nil, ErrDuplicate
		}
		return nil, nil, fmt.Errorf("insert ledger entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit tx: %w", err)
	}

	return w, &t, nil
}
