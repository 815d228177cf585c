package chats

import (
	"context"

	"github.com/duongnt/taskchat/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Post appends a message authored by the given (already authenticated) user.
func (s *Service) Post(ctx context.Context, userID int64, message string) error {
	if _, err := s.repo.Create(ctx, userID, message); err != nil {
		return common.ErrorInternal
	}
	return nil
}

// ListAll returns every message in insertion order. No authentication is
// required for reads.
func (s *Service) ListAll(ctx context.Context) ([]MessageView, error) {
	messages, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return messages, nil
}
