package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/duongnt/taskchat/internal/server/chats"
	"github.com/duongnt/taskchat/internal/server/migrations"
	"github.com/duongnt/taskchat/internal/server/projects"
	"github.com/duongnt/taskchat/internal/server/tasks"
	"github.com/duongnt/taskchat/internal/server/users"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

type SqliteRepositoryManager struct {
	db       *sql.DB
	users    users.Repository
	chats    chats.Repository
	projects projects.Repository
	tasks    tasks.Repository
}

func (m *SqliteRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *SqliteRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *SqliteRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *SqliteRepositoryManager) Chats() chats.Repository {
	return m.chats
}

func (m *SqliteRepositoryManager) Projects() projects.Repository {
	return m.projects
}

func (m *SqliteRepositoryManager) Tasks() tasks.Repository {
	return m.tasks
}

func (m *SqliteRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "sqlite"); err != nil {
		return err
	}

	return nil
}

func NewSqliteRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	// SQLite allows one writer at a time; funneling every caller through a
	// single connection serializes store operations process-wide.
	db.SetMaxOpenConns(1)

	m := &SqliteRepositoryManager{
		db:       db,
		users:    users.NewSqliteRepository(db),
		chats:    chats.NewSqliteRepository(db),
		projects: projects.NewSqliteRepository(db),
		tasks:    tasks.NewSqliteRepository(db),
	}

	err = m.RunMigrations(context.Background())
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
