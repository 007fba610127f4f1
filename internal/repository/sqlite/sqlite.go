package sqlite

import (
	"context"
	"database/sql"
	"io"

	"log/slog"

	"github.com/garnizeh/recruitd/internal/db"
	"github.com/garnizeh/recruitd/pkg/repository"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx, so every query method works
// unchanged on the shared connection and inside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store implements the repository interfaces using the internal DB wrapper.
type Store struct {
	conn   *db.DB
	q      dbtx
	logger *slog.Logger
}

// Ensure Store implements the public interfaces.
var _ repository.Store = (*Store)(nil)

func New(conn *db.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Store{conn: conn, q: conn.GetConn(), logger: logger}
}

// WithTx runs fn against a transaction-bound view of the store. Commit and
// rollback follow db.WithTx's discipline.
func (s *Store) WithTx(ctx context.Context, fn func(q repository.Queries) error) error {
	return s.conn.WithTx(ctx, func(tx *sql.Tx) error {
		return fn(&Store{conn: s.conn, q: tx, logger: s.logger})
	})
}
