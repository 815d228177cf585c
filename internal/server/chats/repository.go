package chats

import (
	"context"
)

type Repository interface {
	// Create appends a message and returns its assigned ID.
	Create(ctx context.Context, userID int64, message string) (int64, error)
	// ListAll returns every message joined with its author, in insertion order.
	ListAll(ctx context.Context) ([]MessageView, error)
}
