package devserver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"task-management/internal/model"
)

// SQLStore keeps tasks in a MySQL or PostgreSQL table named "tasks".
type SQLStore struct {
	db      *sql.DB
	dialect string
}

var schemas = map[string]string{
	StorageMySQL: `CREATE TABLE IF NOT EXISTS tasks (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description VARCHAR(2000) NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	StoragePostgres: `CREATE TABLE IF NOT EXISTS tasks (
		id BIGSERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description VARCHAR(2000) NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// OpenSQLStore connects with the given dialect ("mysql" or "postgres"),
// pings the database and creates the tasks table if needed.
func OpenSQLStore(ctx context.Context, dialect, dsn string) (*SQLStore, error) {
	schema, ok := schemas[dialect]
	if !ok {
		return nil, fmt.Errorf("unsupported storage dialect %q", dialect)
	}
	if dsn == "" {
		return nil, errors.New("dsn is required for sql storage")
	}

	db, err := sql.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", dialect, err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", dialect, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tasks table: %w", err)
	}

	return &SQLStore{db: db, dialect: dialect}, nil
}

// rebind rewrites "?" placeholders to "$n" for PostgreSQL.
func rebind(dialect, query string) string {
	if dialect != StoragePostgres {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (s *SQLStore) List(ctx context.Context) ([]model.Task, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, title, description, status FROM tasks ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("could not query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status); err != nil {
			return nil, fmt.Errorf("could not scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}
	return tasks, nil
}

func (s *SQLStore) Get(ctx context.Context, id int64) (model.Task, error) {
	query := rebind(s.dialect, "SELECT id, title, description, status FROM tasks WHERE id = ?")

	var t model.Task
	err := s.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Title, &t.Description, &t.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, fmt.Errorf("could not query task: %w", err)
	}
	return t, nil
}

func (s *SQLStore) Create(ctx context.Context, task model.Task) (model.Task, error) {
	if s.dialect == StoragePostgres {
		query := rebind(s.dialect, "INSERT INTO tasks (title, description, status) VALUES (?, ?, ?) RETURNING id")
		if err := s.db.QueryRowContext(ctx, query, task.Title, task.Description, task.Status).Scan(&task.ID); err != nil {
			return model.Task{}, fmt.Errorf("could not insert task: %w", err)
		}
		return task, nil
	}

	result, err := s.db.ExecContext(ctx, "INSERT INTO tasks (title, description, status) VALUES (?, ?, ?)",
		task.Title, task.Description, task.Status)
	if err != nil {
		return model.Task{}, fmt.Errorf("could not insert task: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return model.Task{}, fmt.Errorf("could not get last insert ID: %w", err)
	}
	task.ID = id
	return task, nil
}

// Update does not rely on RowsAffected: MySQL reports 0 for a row whose
// values did not change.
func (s *SQLStore) Update(ctx context.Context, id int64, task model.Task) (model.Task, error) {
	query := rebind(s.dialect, "UPDATE tasks SET title = ?, description = ?, status = ? WHERE id = ?")
	if _, err := s.db.ExecContext(ctx, query, task.Title, task.Description, task.Status, id); err != nil {
		return model.Task{}, fmt.Errorf("could not update task: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *SQLStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, rebind(s.dialect, "DELETE FROM tasks WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("could not delete task: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) Close() error { return s.db.Close() }
