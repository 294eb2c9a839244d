package store

import (
	"context"

	"github.com/lamijafatic/blog-website-api/internal/config"
	"github.com/lamijafatic/blog-website-api/internal/logger"
)

// Storages aggregates the repositories of the three collections.
type Storages struct {
	UserRepository    UserRepository
	BlogRepository    BlogRepository
	CommentRepository CommentRepository

	close func(ctx context.Context) error
}

// NewStorages opens the store selected by cfg: the in-process store for the
// "memory" URI, MongoDB otherwise. MongoDB indexes are migrated on open.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	if cfg.IsMemory() {
		log.Info().Str("func", "store.NewStorages").Msg("using in-memory storage")
		return NewMemoryStorages(), nil
	}

	return NewMongoStorages(ctx, cfg, log)
}

// Close releases the underlying connection, if any.
func (s *Storages) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
