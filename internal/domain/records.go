package domain

import "context"

// Record keys for the persisted collections. Each key maps to one JSON
// document: a single User, a User array, a SwapRequest array, and an
// Announcement array respectively.
const (
	RecordSession       = "session"
	RecordUsers         = "users"
	RecordRequests      = "requests"
	RecordAnnouncements = "announcements"
)

// RecordStore defines keyed durable storage for the directory collections.
// Load returns ErrNotFound when the key has never been written. Save
// overwrites any previous value (last write wins). Delete of an absent key
// is not an error.
type RecordStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Database defines lifecycle operations for the underlying database.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
