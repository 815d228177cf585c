package users

import (
	"context"
	"errors"
	"time"

	"github.com/duongnt/taskchat/internal/common"
	"github.com/duongnt/taskchat/internal/server/auth"
	"github.com/duongnt/taskchat/internal/server/config"
)

type Service struct {
	repo          Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidity,
	}
}

// Register creates a new user with a hashed password. A taken username
// yields common.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, username, password string) (*User, error) {

	user := &User{
		Username: username,
		Password: auth.HashPassword(password),
	}

	user, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Login verifies the credentials and issues a signed session token. The
// token is also persisted as the user's latest token; issuing a new token
// does not invalidate previously issued ones.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.Username, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", common.ErrorInternal
	}

	if err := s.repo.UpdateToken(ctx, user.ID, token); err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// Authenticate resolves a session token to the user it was issued for.
// A bad signature, a malformed payload, or a username without a matching
// user row all map to common.ErrInvalidToken.
func (s *Service) Authenticate(ctx context.Context, token string) (*User, error) {

	username, err := auth.GetUsernameFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

func (s *Service) ListUsernames(ctx context.Context) ([]string, error) {
	usernames, err := s.repo.ListUsernames(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return usernames, nil
}
