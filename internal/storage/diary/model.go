package diary

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Entry represents a diary entry record. One entry per user per day is
// enforced by a unique index on (user_id, entry_date).
type Entry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	EntryDate time.Time
	Title     string
	Content   string
	Mood      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EntryCreate is the input for creating a new diary entry.
type EntryCreate struct {
	UserID    uuid.UUID
	EntryDate time.Time
	Title     string
	Content   string
	Mood      string
}

// IDiaryTable defines the interface for diary storage operations.
// Find methods return (nil, nil) when no row matches.
type IDiaryTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Entry, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Entry, error)
	Insert(ctx context.Context, create *EntryCreate) (uuid.UUID, error)
	Update(ctx context.Context, entry *Entry) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
