package users

import "time"

type User struct {
	ID        int64
	Username  string
	Password  string // hex SHA-256 digest
	Token     string // latest issued session token, empty until first login
	CreatedAt time.Time
}
