package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/yobo-blog/internal/config"
	"github.com/MKhiriev/yobo-blog/internal/logger"
)

// Storages bundles every repository over one database connection.
type Storages struct {
	UserRepository     UserRepository
	BlogPostRepository BlogPostRepository

	db *DB
}

// NewStorages connects to the database described by cfg, applies pending
// migrations and constructs the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB constructs the repositories over an open connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		BlogPostRepository: NewBlogPostRepository(db, log),
		db:                 db,
	}
}

// PingContext verifies that the database is reachable.
func (s *Storages) PingContext(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
