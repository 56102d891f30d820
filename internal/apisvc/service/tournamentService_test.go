package service

import (
	"context"
	"sync"
	"testing"

	"github.com/avvvet/arena-services/internal/apisvc/models"
	"github.com/avvvet/arena-services/internal/apisvc/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type joinKey struct {
	tournamentID int64
	userID       int64
}

// fakeTournamentStore reproduces the store's join semantics: the unique
// pair constraint makes a repeat join a no-op, the capacity guard makes
// a full tournament an error, and both sides commit together.
type fakeTournamentStore struct {
	mu          sync.Mutex
	tournaments map[int64]*models.Tournament
	players     map[joinKey]bool
	nextID      int64
}

func newFakeTournamentStore() *fakeTournamentStore {
	return &fakeTournamentStore{
		tournaments: make(map[int64]*models.Tournament),
		players:     make(map[joinKey]bool),
	}
}

func (f *fakeTournamentStore) Create(_ context.Context, t models.Tournament) (*models.Tournament, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	t.ID = f.nextID
	f.tournaments[t.ID] = &t
	cp := t
	return &cp, nil
}

func (f *fakeTournamentStore) GetByID(_ context.Context, id int64) (*models.Tournament, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, ok := f.tournaments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTournamentStore) List(_ context.Context) ([]*models.Tournament, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*models.Tournament
	for _, t := range f.tournaments {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeTournamentStore) Update(_ context.Context, t models.Tournament) (*models.Tournament, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.tournaments[t.ID]
	if !ok {
		return nil, store.ErrNotFound
	}
	existing.Title = t.Title
	existing.Game = t.Game
	existing.EntryFee = t.EntryFee
	existing.PrizePool = t.PrizePool
	existing.MaxPlayers = t.MaxPlayers
	cp := *existing
	return &cp, nil
}

func (f *fakeTournamentStore) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.tournaments[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.tournaments, id)
	return nil
}

func (f *fakeTournamentStore) Join(_ context.Context, tournamentID, userID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, ok := f.tournaments[tournamentID]
	if !ok {
		return false, store.ErrNotFound
	}
	key := joinKey{tournamentID, userID}
	if f.players[key] {
		return false, nil
	}
	if t.CurrentPlayers >= t.MaxPlayers {
		return false, store.ErrTournamentFull
	}
	f.players[key] = true
	t.CurrentPlayers++
	return true, nil
}

func (f *fakeTournamentStore) GetPlayers(_ context.Context, tournamentID int64) ([]*models.TournamentPlayer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*models.TournamentPlayer
	for key := range f.players {
		if key.tournamentID == tournamentID {
			out = append(out, &models.TournamentPlayer{TournamentID: key.tournamentID, UserID: key.userID})
		}
	}
	return out, nil
}

func TestJoinTwiceIncrementsOnce(t *testing.T) {
	fs := newFakeTournamentStore()
	svc := NewTournamentService(fs)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Tournament{Title: "Friday Cup", Game: "bingo", MaxPlayers: 8})
	require.NoError(t, err)

	joined, err := svc.Join(ctx, created.ID, 42)
	require.NoError(t, err)
	assert.True(t, joined)

	joined, err = svc.Join(ctx, created.ID, 42)
	require.NoError(t, err)
	assert.False(t, joined)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentPlayers)
}

func TestConcurrentJoinsCountEveryPlayerOnce(t *testing.T) {
	fs := newFakeTournamentStore()
	svc := NewTournamentService(fs)
	ctx := context.Background()

	const players = 16

	created, err := svc.Create(ctx, models.Tournament{Title: "Open", Game: "bingo", MaxPlayers: players})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < players; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			joined, err := svc.Join(ctx, created.ID, userID)
			assert.NoError(t, err)
			assert.True(t, joined)
		}(int64(i + 1))
	}
	wg.Wait()

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, players, got.CurrentPlayers)

	registered, err := svc.GetPlayers(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, registered, players)
}

func TestJoinFullTournament(t *testing.T) {
	fs := newFakeTournamentStore()
	svc := NewTournamentService(fs)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Tournament{Title: "Duel", Game: "bingo", MaxPlayers: 1})
	require.NoError(t, err)

	joined, err := svc.Join(ctx, created.ID, 1)
	require.NoError(t, err)
	require.True(t, joined)

	_, err = svc.Join(ctx, created.ID, 2)
	assert.ErrorIs(t, err, store.ErrTournamentFull)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CurrentPlayers)
}

func TestJoinMissingTournament(t *testing.T) {
	svc := NewTournamentService(newFakeTournamentStore())

	_, err := svc.Join(context.Background(), 99, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateTournamentValidation(t *testing.T) {
	svc := NewTournamentService(newFakeTournamentStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Tournament{Game: "bingo", MaxPlayers: 4})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(ctx, models.Tournament{Title: "Cup", Game: "bingo"})
	assert.ErrorIs(t, err, ErrMissingFields)
}
