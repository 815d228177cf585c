package users

import (
	"context"
	"errors"
	"testing"

	"github.com/duongnt/taskchat/internal/common"
	"github.com/duongnt/taskchat/internal/server/config"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"

	return NewService(NewSqliteRepository(newSqliteDB(t)), cfg)
}

func TestService_RegisterAndDuplicate(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	user, err := s.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.NotEqual(t, "pw1", user.Password, "password must be stored as a digest")

	_, err = s.Register(ctx, "alice", "other")
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestService_LoginIssuesVerifiableToken(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	token, err := s.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := s.Authenticate(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)

	// the issued token is persisted on the user row
	stored, err := s.repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, token, stored.Token)
}

func TestService_LoginWrongPassword(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = s.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Login(ctx, "nobody", "pw1")
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestService_ReloginKeepsOldTokenValid(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	first, err := s.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	second, err := s.Login(ctx, "alice", "pw1")
	require.NoError(t, err)

	// last-login-wins in the store, but earlier tokens stay acceptable
	for _, token := range []string{first, second} {
		user, err := s.Authenticate(ctx, token)
		require.NoError(t, err)
		require.Equal(t, "alice", user.Username)
	}
}

func TestService_AuthenticateRejectsGarbage(t *testing.T) {
	s := newTestService(t)

	_, err := s.Authenticate(context.Background(), "not-a-token")
	require.ErrorIs(t, err, common.ErrInvalidToken)

	_, err = s.Authenticate(context.Background(), "")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestService_AuthenticateUnknownUser(t *testing.T) {
	// a token signed for a user that was never registered must be rejected
	s := newTestService(t)
	other := newTestService(t)
	ctx := context.Background()

	_, err := other.Register(ctx, "bob", "pw")
	require.NoError(t, err)
	token, err := other.Login(ctx, "bob", "pw")
	require.NoError(t, err)

	_, err = s.Authenticate(ctx, token)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}
