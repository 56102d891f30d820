package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/avvvet/arena-services/internal/apisvc/models"
	"github.com/avvvet/arena-services/internal/apisvc/service"
	"github.com/avvvet/arena-services/internal/apisvc/store"

	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memWalletStore struct {
	mu      sync.Mutex
	wallets map[int64]*models.Wallet
	ledger  []*models.Transaction
	nextID  int64
}

func newMemWalletStore() *memWalletStore {
	return &memWalletStore{wallets: make(map[int64]*models.Wallet)}
}

func (m *memWalletStore) GetWallet(_ context.Context, userID int64) (*models.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wallets[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (m *memWalletStore) Credit(_ context.Context, entry models.Transaction) (*models.Wallet, *models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wallets[entry.UserID]
	if !ok {
		return nil, nil, store.ErrNotFound
	}
	w.Balance = w.Balance.Add(entry.Amount)
	return m.append(w, entry)
}

func (m *memWalletStore) CreditBonus(_ context.Context, entry models.Transaction) (*models.Wallet, *models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wallets[entry.UserID]
	if !ok {
		return nil, nil, store.ErrNotFound
	}
	w.BonusBalance = w.BonusBalance.Add(entry.Amount)
	return m.append(w, entry)
}

func (m *memWalletStore) Debit(_ context.Context, entry models.Transaction) (*models.Wallet, *models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wallets[entry.UserID]
	if !ok {
		return nil, nil, store.ErrNotFound
	}
	if w.Balance.LessThan(entry.Amount) {
		return nil, nil, store.ErrInsufficientFunds
	}
	w.Balance = w.Balance.Sub(entry.Amount)
	return m.append(w, entry)
}

func (m *memWalletStore) append(w *models.Wallet, entry models.Transaction) (*models.Wallet, *models.Transaction, error) {
	m.nextID++
	entry.ID = m.nextID
	m.ledger = append(m.ledger, &entry)
	cp := *w
	return &cp, &entry, nil
}

// walletTestRouter mounts the wallet routes without the auth middleware,
// the token path is not under test here.
func walletTestRouter(ws *memWalletStore) *chi.Mux {
	h := NewHandler(nil, service.NewWalletService(ws, nil), nil, nil, nil)

	r := chi.NewRouter()
	r.Get("/v1/wallet/{userId}", h.GetWalletHandler)
	r.Post("/v1/wallet/{userId}/add", h.DepositHandler)
	r.Post("/v1/wallet/{userId}/withdraw", h.WithdrawHandler)
	return r
}

func TestDepositEndpoint(t *testing.T) {
	ws := newMemWalletStore()
	ws.wallets[1] = &models.Wallet{UserId: 1, Balance: decimal.RequireFromString("10.00")}
	r := walletTestRouter(ws)

	body := `{"amount":"5.50","payment_id":"pay-1","payment_method":"card"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/wallet/1/add", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var rsp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rsp))
	data := rsp.Data.(map[string]interface{})
	wallet := data["wallet"].(map[string]interface{})
	assert.Equal(t, "15.5", wallet["balance"])
	require.Len(t, ws.ledger, 1)
	assert.Equal(t, "deposit", ws.ledger[0].TType)
}

func TestWithdrawEndpointInsufficientFunds(t *testing.T) {
	ws := newMemWalletStore()
	ws.wallets[1] = &models.Wallet{UserId: 1, Balance: decimal.RequireFromString("15.50")}
	r := walletTestRouter(ws)

	req := httptest.NewRequest(http.MethodPost, "/v1/wallet/1/withdraw", strings.NewReader(`{"amount":"20.00"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, ws.ledger)

	w, err := ws.GetWallet(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "15.50", w.Balance.StringFixed(2))
}

func TestGetWalletEndpointNotFound(t *testing.T) {
	r := walletTestRouter(newMemWalletStore())

	req := httptest.NewRequest(http.MethodGet, "/v1/wallet/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDepositEndpointRejectsBadAmount(t *testing.T) {
	ws := newMemWalletStore()
	ws.wallets[1] = &models.Wallet{UserId: 1}
	r := walletTestRouter(ws)

	for _, body := range []string{`{"amount":"abc"}`, `{"amount":"-3.00"}`, `{"amount":""}`} {
		req := httptest.NewRequest(http.MethodPost, "/v1/wallet/1/add", strings.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
	assert.Empty(t, ws.ledger)
}
