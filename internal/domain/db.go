package domain

import "context"

// Database defines lifecycle operations for the underlying database.
// Each implementation (SQLite, Postgres) owns its own migration files
// and strategy.
type Database interface {
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

// Store is a Database that also hands out the gallery repository.
type Store interface {
	Database
	Galleries() GalleryRepository
}
