package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Amitgupta170804/BlogEase/dto"
	"github.com/Amitgupta170804/BlogEase/internal/auth"
	"github.com/Amitgupta170804/BlogEase/internal/repository/memstore"
)

func newAuth(t *testing.T) (*AuthService, *memstore.UserStore, *auth.Signer) {
	t.Helper()
	users := memstore.NewUserStore()
	signer := auth.NewSigner("test-secret")
	return NewAuthService(users, signer).WithBcryptCost(bcrypt.MinCost), users, signer
}

func TestRegisterIssuesTokenForNewUser(t *testing.T) {
	ctx := context.Background()
	svc, users, signer := newAuth(t)

	tok, err := svc.Register(ctx, dto.RegisterRequest{Username: "alice", Email: "a@x.io", Password: "pw"})
	require.NoError(t, err)

	uid, err := signer.Parse(tok)
	require.NoError(t, err)

	u, err := users.FindByID(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "pw", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw")))
	assert.False(t, u.CreatedAt.IsZero())
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuth(t)

	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "alice", Email: "a@x.io", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterRequest{Username: "bob", Email: "a@x.io", Password: "pw"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuth(t)

	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "alice", Email: "a@x.io", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterRequest{Username: "alice", Email: "b@x.io", Password: "pw"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterChecksEmailBeforeUsername(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuth(t)

	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "alice", Email: "a@x.io", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterRequest{Username: "alice", Email: "a@x.io", Password: "pw"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, signer := newAuth(t)

	regTok, err := svc.Register(ctx, dto.RegisterRequest{Username: "alice", Email: "a@x.io", Password: "pw"})
	require.NoError(t, err)
	want, err := signer.Parse(regTok)
	require.NoError(t, err)

	tok, err := svc.Login(ctx, dto.LoginRequest{Email: "a@x.io", Password: "pw"})
	require.NoError(t, err)
	got, err := signer.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuth(t)

	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "alice", Email: "a@x.io", Password: "pw"})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, dto.LoginRequest{Email: "a@x.io", Password: "nope"})
	_, unknownEmail := svc.Login(ctx, dto.LoginRequest{Email: "z@x.io", Password: "pw"})

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}
