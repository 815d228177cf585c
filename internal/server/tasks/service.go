package tasks

import (
	"context"
	"errors"

	"github.com/duongnt/taskchat/internal/common"
	"github.com/duongnt/taskchat/internal/server/projects"
)

type Service struct {
	repo     Repository
	projects projects.Repository
}

func NewService(repo Repository, projectRepo projects.Repository) *Service {
	return &Service{repo: repo, projects: projectRepo}
}

// Add creates a task under the project on behalf of callerID. Only the
// project's owner may add tasks; an unknown project fails the same way as a
// non-owner caller. Assignee usernames that don't resolve are skipped.
func (s *Service) Add(ctx context.Context, callerID, projectID int64, name string, members []string) (int64, error) {

	ownerID, err := s.projects.GetOwner(ctx, projectID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, common.ErrNotProjectOwner
		}
		return 0, common.ErrorInternal
	}

	if ownerID != callerID {
		return 0, common.ErrNotProjectOwner
	}

	id, err := s.repo.Create(ctx, projectID, name, members)
	if err != nil {
		return 0, common.ErrorInternal
	}

	return id, nil
}

// ListByProject returns the project's tasks with assignees. No
// authentication is required for reads; an unknown project yields an empty
// list, not an error.
func (s *Service) ListByProject(ctx context.Context, projectID int64) ([]TaskView, error) {
	views, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return views, nil
}
