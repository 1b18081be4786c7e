package devserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"

	pkgLog "task-management/pkg/log"
)

// Config is the dependency bag passed to New().
type Config struct {
	Port           int
	AllowedOrigins []string
}

// Server is the development REST backend for tasks.
type Server struct {
	l          pkgLog.Logger
	store      Store
	httpServer *http.Server
}

// OpenStore builds the Store selected by storage: memory, mysql or postgres.
func OpenStore(ctx context.Context, storage, dsn string) (Store, error) {
	switch storage {
	case "", StorageMemory:
		return NewMemoryStore(), nil
	case StorageMySQL, StoragePostgres:
		return OpenSQLStore(ctx, storage, dsn)
	default:
		return nil, fmt.Errorf("unknown storage %q", storage)
	}
}

// New wires the task handler behind CORS.
func New(l pkgLog.Logger, store Store, cfg Config) (*Server, error) {
	if l == nil {
		return nil, errors.New("logger is required")
	}
	if store == nil {
		return nil, errors.New("store is required")
	}
	if cfg.Port == 0 {
		return nil, errors.New("port is required")
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
	})

	return &Server{
		l:     l,
		store: store,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           c.Handler(NewHandler(store, l)),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Run serves until ctx is cancelled, then shuts down and closes the store.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.l.Infof(ctx, "Dev server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.store.Close()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.store.Close()
		return fmt.Errorf("failed to shut down dev server: %w", err)
	}
	return s.store.Close()
}
