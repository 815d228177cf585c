// Package db wires the storage backend: it opens the database selected by
// the DSN, runs migrations, and hands out the per-entity repositories.
package db

import (
	"context"
	"database/sql"

	"github.com/duongnt/taskchat/internal/server/chats"
	"github.com/duongnt/taskchat/internal/server/projects"
	"github.com/duongnt/taskchat/internal/server/tasks"
	"github.com/duongnt/taskchat/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Users() users.Repository
	Chats() chats.Repository
	Projects() projects.Repository
	Tasks() tasks.Repository
}

// NewRepositoryManager selects the backend by DSN: postgres:// or
// postgresql:// URLs open Postgres, anything else is treated as a SQLite
// file path or file: URI.
func NewRepositoryManager(dsn string) (RepositoryManager, error) {
	if isPostgresDSN(dsn) {
		return NewPostgresRepositoryManager(dsn)
	}
	return NewSqliteRepositoryManager(dsn)
}
