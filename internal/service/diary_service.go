package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"

	"github.com/keller-networks/pms-server/internal/storage"
	"github.com/keller-networks/pms-server/internal/storage/diary"
)

const uniqueViolationCode = "23505"

// DiaryEntry represents a diary entry in the service layer.
type DiaryEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	EntryDate time.Time
	Title     string
	Content   string
	Mood      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DiaryEntryCreate is the input for creating a diary entry.
type DiaryEntryCreate struct {
	UserID    uuid.UUID
	EntryDate time.Time
	Title     string
	Content   string
	Mood      string
}

// DiaryEntryUpdate is a partial edit; nil fields keep their current value.
// The entry date is fixed at creation.
type DiaryEntryUpdate struct {
	Title   *string
	Content *string
	Mood    *string
}

// DiaryService handles diary business logic.
type DiaryService struct {
	storage *storage.Storage
}

// NewDiaryService creates a new DiaryService.
func NewDiaryService(store *storage.Storage) *DiaryService {
	return &DiaryService{storage: store}
}

// CreateEntry creates a diary entry. The unique index on (user_id,
// entry_date) enforces one entry per day; a violation maps to ErrEntryExists.
func (s *DiaryService) CreateEntry(ctx context.Context, create DiaryEntryCreate) (uuid.UUID, error) {
	id, err := s.storage.Diary.Insert(ctx, &diary.EntryCreate{
		UserID:    create.UserID,
		EntryDate: create.EntryDate,
		Title:     create.Title,
		Content:   create.Content,
		Mood:      create.Mood,
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return uuid.Nil, ErrEntryExists
		}
		return uuid.Nil, err
	}
	return id, nil
}

// GetEntry retrieves one diary entry.
func (s *DiaryService) GetEntry(ctx context.Context, id uuid.UUID) (*DiaryEntry, error) {
	row, err := s.storage.Diary.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrEntryNotFound
	}
	converted := entryFromStorage(row)
	return &converted, nil
}

// ListEntries returns all of a user's entries, newest day first.
func (s *DiaryService) ListEntries(ctx context.Context, userID uuid.UUID) ([]DiaryEntry, error) {
	rows, err := s.storage.Diary.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]DiaryEntry, len(rows))
	for i, row := range rows {
		entries[i] = entryFromStorage(row)
	}
	return entries, nil
}

// UpdateEntry applies a partial edit to an entry's title, content or mood.
func (s *DiaryService) UpdateEntry(ctx context.Context, id uuid.UUID, update DiaryEntryUpdate) error {
	row, err := s.storage.Diary.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrEntryNotFound
	}

	if update.Title != nil {
		row.Title = *update.Title
	}
	if update.Content != nil {
		row.Content = *update.Content
	}
	if update.Mood != nil {
		row.Mood = *update.Mood
	}

	updated, err := s.storage.Diary.Update(ctx, row)
	if err != nil {
		return err
	}
	if !updated {
		return ErrEntryNotFound
	}
	return nil
}

// DeleteEntry removes a diary entry.
func (s *DiaryService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.storage.Diary.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEntryNotFound
	}
	return nil
}

func entryFromStorage(row *diary.Entry) DiaryEntry {
	return DiaryEntry{
		ID:        row.ID,
		UserID:    row.UserID,
		EntryDate: row.EntryDate,
		Title:     row.Title,
		Content:   row.Content,
		Mood:      row.Mood,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
