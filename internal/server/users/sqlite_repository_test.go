package users

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/duongnt/taskchat/internal/common"
	"github.com/duongnt/taskchat/internal/server/migrations"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

func newSqliteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "users_test.db"))
	if err != nil {
		t.Fatalf("sql.Open error: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatalf("goose.SetDialect error: %v", err)
	}
	if err := goose.Up(db, "sqlite"); err != nil {
		t.Fatalf("goose.Up error: %v", err)
	}

	return db
}

func TestSqliteCreate_AssignsID(t *testing.T) {
	repo := NewSqliteRepository(newSqliteDB(t))

	u, err := repo.Create(context.Background(), &User{Username: "alice", Password: "digest"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("expected assigned ID, got 0")
	}
}

func TestSqliteCreate_DuplicateUsername(t *testing.T) {
	repo := NewSqliteRepository(newSqliteDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, &User{Username: "alice", Password: "d1"}); err != nil {
		t.Fatalf("first Create error: %v", err)
	}

	_, err := repo.Create(ctx, &User{Username: "alice", Password: "d2"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected common.ErrorAlreadyExists, got %v", err)
	}
}

func TestSqliteGetByUsername(t *testing.T) {
	repo := NewSqliteRepository(newSqliteDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &User{Username: "bob", Password: "digest"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.GetByUsername(ctx, "bob")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if got.ID != created.ID || got.Username != "bob" || got.Password != "digest" || got.Token != "" {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := repo.GetByUsername(ctx, "ghost"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestSqliteUpdateToken(t *testing.T) {
	repo := NewSqliteRepository(newSqliteDB(t))
	ctx := context.Background()

	u, err := repo.Create(ctx, &User{Username: "carol", Password: "digest"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := repo.UpdateToken(ctx, u.ID, "tok-1"); err != nil {
		t.Fatalf("UpdateToken error: %v", err)
	}

	got, err := repo.GetByUsername(ctx, "carol")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if got.Token != "tok-1" {
		t.Fatalf("token not persisted: %+v", got)
	}

	if err := repo.UpdateToken(ctx, 9999, "tok-2"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound for unknown id, got %v", err)
	}
}

func TestSqliteListUsernames_InsertionOrder(t *testing.T) {
	repo := NewSqliteRepository(newSqliteDB(t))
	ctx := context.Background()

	for _, name := range []string{"zed", "amy", "mid"} {
		if _, err := repo.Create(ctx, &User{Username: name, Password: "d"}); err != nil {
			t.Fatalf("Create(%s) error: %v", name, err)
		}
	}

	got, err := repo.ListUsernames(ctx)
	if err != nil {
		t.Fatalf("ListUsernames error: %v", err)
	}
	want := []string{"zed", "amy", "mid"}
	if len(got) != len(want) {
		t.Fatalf("expected %d usernames, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("usernames out of order: got %v want %v", got, want)
		}
	}
}
