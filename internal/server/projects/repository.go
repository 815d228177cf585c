package projects

import (
	"context"
)

type Repository interface {
	// Create inserts the project and memberships for every member username
	// that resolves to an existing user, in one transaction. Unknown
	// usernames are skipped. Returns the assigned project ID.
	Create(ctx context.Context, name string, ownerID int64, members []string) (int64, error)
	// GetOwner returns the owner user ID, or common.ErrorNotFound for an
	// unknown project.
	GetOwner(ctx context.Context, projectID int64) (int64, error)
	// ListAll returns every project with owner and member usernames.
	ListAll(ctx context.Context) ([]ProjectView, error)
}
