package chats

import (
	"context"
	"database/sql"
	"fmt"
)

type SqliteRepository struct {
	db *sql.DB
}

func NewSqliteRepository(db *sql.DB) *SqliteRepository {
	return &SqliteRepository{db: db}
}

func (r *SqliteRepository) Create(ctx context.Context, userID int64, message string) (int64, error) {

	query := `INSERT INTO chats (user_id, message) VALUES (?, ?)`

	res, err := r.db.ExecContext(ctx, query, userID, message)
	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %w", err)
	}

	return res.LastInsertId()
}

func (r *SqliteRepository) ListAll(ctx context.Context) ([]MessageView, error) {
	query :=
		`SELECT u.username, c.message, c.created_at
		 FROM chats c JOIN users u ON c.user_id = u.id
		 ORDER BY c.id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	messages := make([]MessageView, 0)
	for rows.Next() {
		var m MessageView
		if err := rows.Scan(&m.Username, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}
