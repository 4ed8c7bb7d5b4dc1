package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/keller-networks/pms-server/internal/storage"
	"github.com/keller-networks/pms-server/internal/storage/diary"
)

func newTestDiaryService() (*DiaryService, *mockDiaryTable) {
	entries := &mockDiaryTable{}
	return NewDiaryService(&storage.Storage{Diary: entries}), entries
}

func TestCreateEntry_Success(t *testing.T) {
	svc, entries := newTestDiaryService()

	expectedID := uuid.Must(uuid.NewV4())
	entryDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	entries.On("Insert", mock.Anything, mock.MatchedBy(func(c *diary.EntryCreate) bool {
		return c.EntryDate.Equal(entryDate) && c.Mood == "calm"
	})).Return(expectedID, nil)

	id, err := svc.CreateEntry(context.Background(), DiaryEntryCreate{
		UserID:    uuid.Must(uuid.NewV4()),
		EntryDate: entryDate,
		Title:     "Monday",
		Content:   "Quiet day.",
		Mood:      "calm",
	})

	assert.NoError(t, err)
	assert.Equal(t, expectedID, id)
}

func TestCreateEntry_SecondEntrySameDay(t *testing.T) {
	svc, entries := newTestDiaryService()

	entries.On("Insert", mock.Anything, mock.Anything).
		Return(uuid.Nil, &pq.Error{Code: "23505"})

	_, err := svc.CreateEntry(context.Background(), DiaryEntryCreate{
		UserID:    uuid.Must(uuid.NewV4()),
		EntryDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Mood:      "happy",
	})

	assert.ErrorIs(t, err, ErrEntryExists)
}

func TestUpdateEntry_KeepsEntryDate(t *testing.T) {
	svc, entries := newTestDiaryService()

	entryID := uuid.Must(uuid.NewV4())
	entryDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	entries.On("FindByID", mock.Anything, entryID).Return(&diary.Entry{
		ID:        entryID,
		EntryDate: entryDate,
		Title:     "Monday",
		Mood:      "calm",
	}, nil)
	entries.On("Update", mock.Anything, mock.MatchedBy(func(row *diary.Entry) bool {
		return row.Mood == "angry" && row.EntryDate.Equal(entryDate)
	})).Return(true, nil)

	mood := "angry"
	err := svc.UpdateEntry(context.Background(), entryID, DiaryEntryUpdate{Mood: &mood})

	assert.NoError(t, err)
	entries.AssertExpectations(t)
}

func TestDeleteEntry_NotFound(t *testing.T) {
	svc, entries := newTestDiaryService()

	entryID := uuid.Must(uuid.NewV4())
	entries.On("Delete", mock.Anything, entryID).Return(false, nil)

	assert.ErrorIs(t, svc.DeleteEntry(context.Background(), entryID), ErrEntryNotFound)
}

func TestGetEntry_Found(t *testing.T) {
	svc, entries := newTestDiaryService()

	entryID := uuid.Must(uuid.NewV4())
	entryDate := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	entries.On("FindByID", mock.Anything, entryID).Return(&diary.Entry{
		ID:        entryID,
		EntryDate: entryDate,
		Title:     "Monday",
		Content:   "Quiet day.",
		Mood:      "calm",
	}, nil)

	entry, err := svc.GetEntry(context.Background(), entryID)

	assert.NoError(t, err)
	assert.Equal(t, entryID, entry.ID)
	assert.True(t, entry.EntryDate.Equal(entryDate))
	assert.Equal(t, "calm", entry.Mood)
}

func TestGetEntry_NotFound(t *testing.T) {
	svc, entries := newTestDiaryService()

	entryID := uuid.Must(uuid.NewV4())
	entries.On("FindByID", mock.Anything, entryID).Return(nil, nil)

	_, err := svc.GetEntry(context.Background(), entryID)

	assert.ErrorIs(t, err, ErrEntryNotFound)
}
