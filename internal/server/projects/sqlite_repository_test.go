package projects

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

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "projects_test.db"))
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

func insertUser(t *testing.T, db *sql.DB, username string) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO users (username, password) VALUES (?, ?)`, username, "digest")
	if err != nil {
		t.Fatalf("insert user error: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("LastInsertId error: %v", err)
	}
	return id
}

func TestSqliteCreate_SkipsUnknownMembers(t *testing.T) {
	db := newSqliteDB(t)
	repo := NewSqliteRepository(db)
	ctx := context.Background()

	owner := insertUser(t, db, "alice")
	insertUser(t, db, "bob")

	projectID, err := repo.Create(ctx, "proj1", owner, []string{"bob", "ghost"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if projectID == 0 {
		t.Fatalf("expected assigned project ID")
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM project_members WHERE project_id = ?`, projectID).Scan(&count); err != nil {
		t.Fatalf("count error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 membership (the valid one), got %d", count)
	}
}

func TestSqliteCreate_NoMembers(t *testing.T) {
	db := newSqliteDB(t)
	repo := NewSqliteRepository(db)

	owner := insertUser(t, db, "alice")

	if _, err := repo.Create(context.Background(), "solo", owner, nil); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestSqliteGetOwner(t *testing.T) {
	db := newSqliteDB(t)
	repo := NewSqliteRepository(db)
	ctx := context.Background()

	owner := insertUser(t, db, "alice")
	projectID, err := repo.Create(ctx, "proj1", owner, nil)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.GetOwner(ctx, projectID)
	if err != nil {
		t.Fatalf("GetOwner error: %v", err)
	}
	if got != owner {
		t.Fatalf("owner mismatch: got %d want %d", got, owner)
	}

	if _, err := repo.GetOwner(ctx, 9999); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestSqliteListAll(t *testing.T) {
	db := newSqliteDB(t)
	repo := NewSqliteRepository(db)
	ctx := context.Background()

	alice := insertUser(t, db, "alice")
	bob := insertUser(t, db, "bob")
	insertUser(t, db, "carol")

	p1, err := repo.Create(ctx, "proj1", alice, []string{"bob", "carol"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := repo.Create(ctx, "proj2", bob, nil); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	views, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(views))
	}

	first := views[0]
	if first.ID != p1 || first.Name != "proj1" || first.Owner != "alice" {
		t.Fatalf("unexpected project: %+v", first)
	}
	if len(first.Members) != 2 || first.Members[0] != "bob" || first.Members[1] != "carol" {
		t.Fatalf("unexpected members: %v", first.Members)
	}

	if len(views[1].Members) != 0 {
		t.Fatalf("expected no members for proj2, got %v", views[1].Members)
	}
}
