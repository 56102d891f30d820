package store

import (
	"context"
	"fmt"

	"github.com/avvvet/arena-services/internal/apisvc/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionStore struct {
	db *pgxpool.Pool
}

func NewTransactionStore(db *pgxpool.Pool) *TransactionStore {
	return &TransactionStore{db: db}
}

const transactionColumns = `id, user_id, ttype, amount, status, COALESCE(tref, ''), payment_id, payment_method, created_at`

// ListByUser returns the user's ledger newest first, id breaks ties.
func (s *TransactionStore) ListByUser(ctx context.Context, userID int64) ([]*models.Transaction, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+transactionColumns+`
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// ListAll is the admin view over the whole ledger, newest first.
func (s *TransactionStore) ListAll(ctx context.Context) ([]*models.Transaction, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+transactionColumns+`
        FROM transactions
        ORDER BY created_at DESC, id DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]*models.Transaction, error) {
	var entries []*models.Transaction
	for rows.Next() {
		t := &models.Transaction{}
		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.TType,
			&t.Amount,
			&t.Status,
			&t.TRef,
			&t.PaymentID,
			&t.PaymentMethod,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, t)
	}

	return entries, rows.Err()
}
