package projects

import (
	"context"
	"errors"

	"github.com/duongnt/taskchat/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create inserts a project owned by the given user and adds every member
// username that resolves to an existing user. Unknown usernames are skipped
// silently; the operation succeeds even if no membership was created.
func (s *Service) Create(ctx context.Context, ownerID int64, name string, members []string) (int64, error) {
	id, err := s.repo.Create(ctx, name, ownerID, members)
	if err != nil {
		return 0, common.ErrorInternal
	}
	return id, nil
}

// GetOwner resolves a project's owner user ID.
func (s *Service) GetOwner(ctx context.Context, projectID int64) (int64, error) {
	ownerID, err := s.repo.GetOwner(ctx, projectID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, common.ErrorNotFound
		}
		return 0, common.ErrorInternal
	}
	return ownerID, nil
}

// ListAll returns every project with owner and member usernames. No
// authentication is required for reads.
func (s *Service) ListAll(ctx context.Context) ([]ProjectView, error) {
	views, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return views, nil
}
