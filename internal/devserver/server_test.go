package devserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-management/internal/model"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func TestRebind(t *testing.T) {
	q := "UPDATE tasks SET title = ?, status = ? WHERE id = ?"
	assert.Equal(t, q, rebind(StorageMySQL, q))
	assert.Equal(t, "UPDATE tasks SET title = $1, status = $2 WHERE id = $3", rebind(StoragePostgres, q))
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	s, err := OpenStore(ctx, "", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	_, err = OpenStore(ctx, "sqlite", "")
	assert.Error(t, err)

	_, err = OpenStore(ctx, StorageMySQL, "")
	assert.ErrorContains(t, err, "dsn is required")
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil, NewMemoryStore(), Config{Port: 8081})
	assert.Error(t, err)
	_, err = New(nopLogger{}, nil, Config{Port: 8081})
	assert.Error(t, err)
	_, err = New(nopLogger{}, NewMemoryStore(), Config{})
	assert.Error(t, err)
}

func TestServerCORSPreflight(t *testing.T) {
	srv, err := New(nopLogger{}, NewMemoryStore(), Config{Port: 8081, AllowedOrigins: []string{"http://localhost:4200"}})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodOptions, "/api/tasks", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:4200", w.Header().Get("Access-Control-Allow-Origin"))
}

// TestSQLStore runs against a real database when TEST_DEVSERVER_DIALECT and
// TEST_DEVSERVER_DSN are set, e.g. postgres + "postgres://...?sslmode=disable".
func TestSQLStore(t *testing.T) {
	dialect, dsn := os.Getenv("TEST_DEVSERVER_DIALECT"), os.Getenv("TEST_DEVSERVER_DSN")
	if dialect == "" || dsn == "" {
		t.Skip("TEST_DEVSERVER_DIALECT / TEST_DEVSERVER_DSN not set")
	}

	ctx := context.Background()
	store, err := OpenSQLStore(ctx, dialect, dsn)
	require.NoError(t, err)
	defer store.Close()

	created, err := store.Create(ctx, model.Task{Title: "sql task", Status: model.StatusToDo})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	updated, err := store.Update(ctx, created.ID, model.Task{Title: "sql task", Description: "d", Status: model.StatusDone})
	require.NoError(t, err)
	assert.Equal(t, model.StatusDone, updated.Status)

	// same values again: must not be reported as missing
	_, err = store.Update(ctx, created.ID, model.Task{Title: "sql task", Description: "d", Status: model.StatusDone})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))
	_, err = store.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, created.ID), ErrNotFound)
}
