package store

import (
	"context"
	"fmt"

	"github.com/warblerhq/warbler/internal/config"
	"github.com/warblerhq/warbler/internal/logger"
)

// Storages bundles every repository behind one construction point.
type Storages struct {
	UserRepository    UserRepository
	MessageRepository MessageRepository
	FollowRepository  FollowRepository
}

// NewStorages opens the database selected by cfg.Driver and wires all
// repositories onto the shared connection. The returned *DB is also handed
// back so the caller can run migrations and close the pool on shutdown.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, *DB, error) {
	var db *DB
	var err error

	switch cfg.Driver {
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		db, err = NewConnectPostgres(ctx, cfg, log)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error connecting database: %w", err)
	}

	storages := &Storages{
		UserRepository:    NewUserRepository(db, log),
		MessageRepository: NewMessageRepository(db, log),
		FollowRepository:  NewFollowRepository(db, log),
	}

	return storages, db, nil
}
