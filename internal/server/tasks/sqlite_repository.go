package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/duongnt/taskchat/internal/dbx"
)

type SqliteRepository struct {
	db *sql.DB
}

func NewSqliteRepository(db *sql.DB) *SqliteRepository {
	return &SqliteRepository{db: db}
}

func (r *SqliteRepository) Create(ctx context.Context, projectID int64, name string, members []string) (int64, error) {

	var taskID int64

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		res, err := tx.ExecContext(ctx, `INSERT INTO tasks (project_id, name) VALUES (?, ?)`, projectID, name)
		if err != nil {
			return err
		}
		taskID, err = res.LastInsertId()
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
				`INSERT INTO task_assignments (task_id, user_id) VALUES (?, ?)`, taskID, userID)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("error performing sql request: %w", err)
	}

	return taskID, nil
}

func (r *SqliteRepository) ListByProject(ctx context.Context, projectID int64) ([]TaskView, error) {

	query := `SELECT id, name FROM tasks WHERE project_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	views := make([]TaskView, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var v TaskView
		if err := rows.Scan(&v.ID, &v.Name); err != nil {
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
		`SELECT ta.task_id, u.username
		 FROM task_assignments ta
		 JOIN tasks t ON ta.task_id = t.id
		 JOIN users u ON ta.user_id = u.id
		 WHERE t.project_id = ?
		 ORDER BY ta.task_id
		 `

	memberRows, err := r.db.QueryContext(ctx, memberQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var taskID int64
		var username string
		if err := memberRows.Scan(&taskID, &username); err != nil {
			return nil, err
		}
		if i, ok := index[taskID]; ok {
			views[i].Members = append(views[i].Members, username)
		}
	}

	return views, memberRows.Err()
}
