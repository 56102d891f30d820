package service

import (
	"context"
	"testing"

	"github.com/avvvet/arena-services/internal/apisvc/models"
	"github.com/avvvet/arena-services/internal/apisvc/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]*models.User)}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user models.User) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, store.ErrDuplicate
		}
	}
	f.nextID++
	user.UserId = f.nextID
	f.users[user.UserId] = &user
	cp := user
	return &cp, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) GetProfile(_ context.Context, id int64) (*models.Profile, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &models.Profile{
		UserId:       u.UserId,
		Username:     u.Username,
		Email:        u.Email,
		Balance:      decimal.Zero,
		BonusBalance: decimal.Zero,
		IsAdmin:      u.IsAdmin,
		IsOwner:      u.IsOwner,
	}, nil
}

func (f *fakeUserStore) UpdateUser(_ context.Context, id int64, username, email *string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if username != nil {
		u.Username = *username
	}
	if email != nil {
		u.Email = *email
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) ListProfiles(ctx context.Context) ([]*models.Profile, error) {
	var out []*models.Profile
	for id := range f.users {
		p, _ := f.GetProfile(ctx, id)
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeUserStore) SetAdmin(_ context.Context, id int64, isAdmin bool) (bool, error) {
	u, ok := f.users[id]
	if !ok {
		return false, nil
	}
	u.IsAdmin = isAdmin
	return true, nil
}

func TestSignupHashesPassword(t *testing.T) {
	fs := newFakeUserStore()
	svc := NewUserService(fs)

	user, err := svc.Signup(context.Background(), "abebe", "abebe@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
}

func TestSignupValidation(t *testing.T) {
	svc := NewUserService(newFakeUserStore())
	ctx := context.Background()

	_, err := svc.Signup(ctx, "", "a@example.com", "pw")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Signup(ctx, "abebe", "  ", "pw")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Signup(ctx, "abebe", "a@example.com", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestSignupDuplicate(t *testing.T) {
	svc := NewUserService(newFakeUserStore())
	ctx := context.Background()

	_, err := svc.Signup(ctx, "abebe", "abebe@example.com", "pw")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "abebe", "other@example.com", "pw")
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestLogin(t *testing.T) {
	svc := NewUserService(newFakeUserStore())
	ctx := context.Background()

	created, err := svc.Signup(ctx, "abebe", "abebe@example.com", "s3cret")
	require.NoError(t, err)

	profile, err := svc.Login(ctx, "abebe@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, created.UserId, profile.UserId)

	_, err = svc.Login(ctx, "abebe@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminToggleIsIdempotent(t *testing.T) {
	fs := newFakeUserStore()
	svc := NewUserService(fs)
	ctx := context.Background()

	user, err := svc.Signup(ctx, "abebe", "abebe@example.com", "pw")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		existed, err := svc.MakeAdmin(ctx, user.UserId)
		require.NoError(t, err)
		assert.True(t, existed)
	}

	profile, err := svc.GetProfile(ctx, user.UserId)
	require.NoError(t, err)
	assert.True(t, profile.IsAdmin)

	existed, err := svc.RemoveAdmin(ctx, user.UserId)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = svc.MakeAdmin(ctx, 999)
	require.NoError(t, err)
	assert.False(t, existed)
}
