package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avvvet/arena-services/internal/apisvc/models"
	"github.com/avvvet/arena-services/internal/comm"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// WalletStore applies a balance mutation and its ledger entry as one
// atomic unit, or neither.
type WalletStore interface {
	GetWallet(ctx context.Context, userID int64) (*models.Wallet, error)
	Credit(ctx context.Context, entry models.Transaction) (*models.Wallet, *models.Transaction, error)
	CreditBonus(ctx context.Context, entry models.Transaction) (*models.Wallet, *models.Transaction, error)
	Debit(ctx context.Context, entry models.Transaction) (*models.Wallet, *models.Transaction, error)
}

// WithdrawalPublisher notifies the settlement worker about pending
// withdrawals.
type WithdrawalPublisher interface {
	PublishWithdrawal(ev comm.WithdrawalEvent) error
}

type WalletService struct {
	walletStore WalletStore
	publisher   WithdrawalPublisher
}

func NewWalletService(store WalletStore, publisher WithdrawalPublisher) *WalletService {
	return &WalletService{walletStore: store, publisher: publisher}
}

func (s *WalletService) GetWallet(ctx context.Context, userID int64) (*models.Wallet, error) {
	return s.walletStore.GetWallet(ctx, userID)
}

// Deposit credits the wallet and appends a completed deposit entry.
// paymentID doubles as the idempotency reference when present.
func (s *WalletService) Deposit(ctx context.Context, userID int64, amount decimal.Decimal, paymentID, paymentMethod string) (*models.Wallet, *models.Transaction, error) {
	amount, err := normalizeAmount(amount)
	if err != nil {
		return nil, nil, err
	}

	entry := models.Transaction{
		UserID:        userID,
		TType:         models.TTypeDeposit,
		Amount:        amount,
		Status:        models.TStatusCompleted,
		TRef:          paymentID,
		PaymentID:     paymentID,
		PaymentMethod: paymentMethod,
	}
	if entry.TRef == "" {
		entry.TRef = uuid.NewString()
	}

	return s.walletStore.Credit(ctx, entry)
}

// Withdraw debits the wallet and appends a pending withdrawal entry;
// settlement happens outside, the worker is notified after commit.
func (s *WalletService) Withdraw(ctx context.Context, userID int64, amount decimal.Decimal) (*models.Wallet, *models.Transaction, error) {
	amount, err := normalizeAmount(amount)
	if err != nil {
		return nil, nil, err
	}

	entry := models.Transaction{
		UserID: userID,
		TType:  models.TTypeWithdrawal,
		Amount: amount,
		Status: models.TStatusPending,
		TRef:   uuid.NewString(),
	}

	wallet, txn, err := s.walletStore.Debit(ctx, entry)
	if err != nil {
		return nil, nil, err
	}

	if s.publisher != nil {
		ev := comm.WithdrawalEvent{
			TransactionID: txn.ID,
			UserID:        userID,
			Amount:        txn.Amount.StringFixed(2),
			TRef:          txn.TRef,
			RequestedAt:   time.Now(),
		}
		// the ledger row is durable already, a lost event only delays settlement
		if err := s.publisher.PublishWithdrawal(ev); err != nil {
			log.Errorf("publish withdrawal event for tx %d: %v", txn.ID, err)
		}
	}

	return wallet, txn, nil
}

// RecordResult writes a win, loss or bonus outcome against the wallet.
// Bonus amounts land on the bonus balance.
func (s *WalletService) RecordResult(ctx context.Context, userID int64, ttype string, amount decimal.Decimal, ref string) (*models.Wallet, *models.Transaction, error) {
	amount, err := normalizeAmount(amount)
	if err != nil {
		return nil, nil, err
	}

	entry := models.Transaction{
		UserID: userID,
		TType:  ttype,
		Amount: amount,
		Status: models.TStatusCompleted,
		TRef:   ref,
	}
	if entry.TRef == "" {
		entry.TRef = uuid.NewString()
	}

	switch ttype {
	case models.TTypeWin:
		return s.walletStore.Credit(ctx, entry)
	case models.TTypeLoss:
		return s.walletStore.Debit(ctx, entry)
	case models.TTypeBonus:
		return s.walletStore.CreditBonus(ctx, entry)
	default:
		return nil, nil, fmt.Errorf("unknown result type %q", ttype)
	}
}

// normalizeAmount rounds to two decimals and rejects anything not
// strictly positive.
func normalizeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	amount = amount.Round(2)
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}
