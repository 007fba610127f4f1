package recruit

import (
	"context"
	"io"
	"time"

	"log/slog"

	"github.com/garnizeh/recruitd/pkg/repository"
)

// PageSize is the fixed listing window of the recruiter view.
const PageSize = 25

// Service is the recruitment core. It is constructed once at process start
// and shared by the request handlers; all state lives in the store.
type Service struct {
	store        repository.Store
	logger       *slog.Logger
	queryTimeout time.Duration
}

func NewService(store repository.Store, logger *slog.Logger, queryTimeout time.Duration) *Service {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if queryTimeout <= 0 {
		queryTimeout = 2 * time.Second
	}
	return &Service{store: store, logger: logger, queryTimeout: queryTimeout}
}

// opCtx bounds one logical storage operation. A timeout rolls back the
// enclosing transaction and surfaces as an infrastructure failure.
func (s *Service) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.queryTimeout)
}
