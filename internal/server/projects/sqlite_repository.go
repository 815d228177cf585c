package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/duongnt/taskchat/internal/common"
	"github.com/duongnt/taskchat/internal/dbx"
)

type SqliteRepository struct {
	db *sql.DB
}

func NewSqliteRepository(db *sql.DB) *SqliteRepository {
	return &SqliteRepository{db: db}
}

func (r *SqliteRepository) Create(ctx context.Context, name string, ownerID int64, members []string) (int64, error) {

	var projectID int64

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		res, err := tx.ExecContext(ctx, `INSERT INTO projects (name, owner) VALUES (?, ?)`, name, ownerID)
		if err != nil {
			return err
		}
		projectID, err = res.LastInsertId()
		if err != nil {
			return err
		}

		for _, member := range members {
			var userID int64
			err := tx.QueryRowContext(ctx, `SELECT id FROM users WHERE username = ?`, member).Scan(&userID)
			if errors.Is(err, sql.ErrNoRows) {
				// unknown usernames are skipped, not an error
				continue
			}
			if err != nil {
				return err
			}

			_, err = tx.ExecContext(ctx,
				`INSERT INTO project_members (project_id, user_id) VALUES (?, ?)`, projectID, userID)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %w", err)
	}

	return projectID, nil
}

func (r *SqliteRepository) GetOwner(ctx context.Context, projectID int64) (int64, error) {
	query := `SELECT owner FROM projects WHERE id = ?`

	var ownerID int64
	err := r.db.QueryRowContext(ctx, query, projectID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("error performing sql request: %w", err)
	}

	return ownerID, nil
}

func (r *SqliteRepository) ListAll(ctx context.Context) ([]ProjectView, error) {

	query :=
		`SELECT p.id, p.name, u.username
		 FROM projects p JOIN users u ON p.owner = u.id
		 ORDER BY p.id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	views := make([]ProjectView, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var v ProjectView
		if err := rows.Scan(&v.ID, &v.Name, &v.Owner); err != nil {
			return nil, err
		}
		v.Members = make([]string, 0)
		index[v.ID] = len(views)
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	memberQuery :=
		`SELECT pm.project_id, u.username
		 FROM project_members pm JOIN users u ON pm.user_id = u.id
		 ORDER BY pm.project_id
		 `

	memberRows, err := r.db.QueryContext(ctx, memberQuery)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var projectID int64
		var username string
		if err := memberRows.Scan(&projectID, &username); err != nil {
			return nil, err
		}
		if i, ok := index[projectID]; ok {
			views[i].Members = append(views[i].Members, username)
		}
	}

	return views, memberRows.Err()
}
