package users

import (
	"context"
)

type Repository interface {
	// Create inserts the user and returns it with the assigned ID.
	// A username collision yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// UpdateToken persists the latest issued token for the user (last-login-wins).
	UpdateToken(ctx context.Context, id int64, token string) error
	ListUsernames(ctx context.Context) ([]string, error)
}
