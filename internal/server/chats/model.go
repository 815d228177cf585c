package chats

import "time"

// Message is one stored chat message (append-only, never edited).
type Message struct {
	ID        int64
	UserID    int64
	Message   string
	CreatedAt time.Time
}

// MessageView is a message joined with its author's username, as returned
// to clients.
type MessageView struct {
	Username  string
	Message   string
	CreatedAt time.Time
}
