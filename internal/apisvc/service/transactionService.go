package service

import (
	"context"

	"github.com/avvvet/arena-services/internal/apisvc/models"
)

type TransactionStore interface {
	ListByUser(ctx context.Context, userID int64) ([]*models.Transaction, error)
	ListAll(ctx context.Context) ([]*models.Transaction, error)
}

type TransactionService struct {
	store TransactionStore
}

func NewTransactionService(store TransactionStore) *TransactionService {
	return &TransactionService{store: store}
}

func (s *TransactionService) ListByUser(ctx context.Context, userID int64) ([]*models.Transaction, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *TransactionService) ListAll(ctx context.Context) ([]*models.Transaction, error) {
	return s.store.ListAll(ctx)
}
