package tasks

import (
	"context"
)

type Repository interface {
	// Create inserts the task and assignments for every member username that
	// resolves to an existing user, in one transaction. Unknown usernames
	// are skipped. Returns the assigned task ID.
	Create(ctx context.Context, projectID int64, name string, members []string) (int64, error)
	// ListByProject returns every task of the project with assignee
	// usernames. An unknown project yields an empty list.
	ListByProject(ctx context.Context, projectID int64) ([]TaskView, error)
}
