// Package diary exposes the diary entry endpoints.
package diary

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/service"
)

const entryDateLayout = "2006-01-02"

// diaryService is the slice of DiaryService the handlers need.
type diaryService interface {
	CreateEntry(ctx context.Context, create service.DiaryEntryCreate) (uuid.UUID, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*service.DiaryEntry, error)
	ListEntries(ctx context.Context, userID uuid.UUID) ([]service.DiaryEntry, error)
	UpdateEntry(ctx context.Context, id uuid.UUID, update service.DiaryEntryUpdate) error
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}

// Handler handles the /v1/diary endpoints.
type Handler struct {
	Diary diaryService
}

// NewHandler creates a new diary Handler.
func NewHandler(svc diaryService) *Handler {
	return &Handler{Diary: svc}
}

// Register registers the diary endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-diary-entry",
		Method:      http.MethodPost,
		Path:        "/v1/diary",
		Summary:     "Create diary entry",
		Description: "Creates an entry; each user can write one entry per day.",
		Tags:        []string{"Diary"},
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "get-diary-entry",
		Method:      http.MethodGet,
		Path:        "/v1/diary/{entryID}",
		Summary:     "Get diary entry",
		Tags:        []string{"Diary"},
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID: "list-diary-entries",
		Method:      http.MethodGet,
		Path:        "/v1/diary/user/{userID}",
		Summary:     "List diary entries",
		Tags:        []string{"Diary"},
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID: "update-diary-entry",
		Method:      http.MethodPatch,
		Path:        "/v1/diary/{entryID}",
		Summary:     "Update diary entry",
		Tags:        []string{"Diary"},
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID: "delete-diary-entry",
		Method:      http.MethodDelete,
		Path:        "/v1/diary/{entryID}",
		Summary:     "Delete diary entry",
		Tags:        []string{"Diary"},
	}, h.delete)
}

// Entry is the API response model for a diary entry.
type Entry struct {
	ID        string `json:"id" doc:"Entry UUID"`
	UserID    string `json:"userID" doc:"Owner UUID"`
	EntryDate string `json:"entryDate" doc:"Entry date, YYYY-MM-DD"`
	Title     string `json:"title,omitempty" doc:"Entry title"`
	Content   string `json:"content" doc:"Entry text"`
	Mood      string `json:"mood" doc:"Mood for the day"`
}

func entryToAPI(entry service.DiaryEntry) Entry {
	return Entry{
		ID:        entry.ID.String(),
		UserID:    entry.UserID.String(),
		EntryDate: entry.EntryDate.Format(entryDateLayout),
		Title:     entry.Title,
		Content:   entry.Content,
		Mood:      entry.Mood,
	}
}

// CreateEntryInput is the Huma input for creating a diary entry.
type CreateEntryInput struct {
	Body struct {
		UserID    string `json:"userID" required:"true" doc:"Owner UUID"`
		EntryDate string `json:"entryDate" required:"true" doc:"Entry date, YYYY-MM-DD"`
		Title     string `json:"title,omitempty" doc:"Entry title"`
		Content   string `json:"content" required:"true" doc:"Entry text"`
		Mood      string `json:"mood" required:"true" enum:"happy,sad,excited,anxious,calm,angry,neutral" doc:"Mood for the day"`
	}
}

// CreateEntryOutput is the Huma output for creating a diary entry.
type CreateEntryOutput struct {
	Status int
	Body   struct {
		ID string `json:"id" doc:"New entry UUID"`
	}
}

func (h *Handler) create(ctx context.Context, input *CreateEntryInput) (*CreateEntryOutput, error) {
	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	entryDate, err := time.Parse(entryDateLayout, input.Body.EntryDate)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid entryDate", err)
	}

	id, err := h.Diary.CreateEntry(ctx, service.DiaryEntryCreate{
		UserID:    userID,
		EntryDate: entryDate,
		Title:     input.Body.Title,
		Content:   input.Body.Content,
		Mood:      input.Body.Mood,
	})
	if err != nil {
		if errors.Is(err, service.ErrEntryExists) {
			return nil, huma.Error409Conflict("an entry already exists for that day")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create diary entry", err)
	}

	out := &CreateEntryOutput{Status: http.StatusCreated}
	out.Body.ID = id.String()
	return out, nil
}

// GetEntryInput is the Huma input for reading one diary entry.
type GetEntryInput struct {
	EntryID string `path:"entryID" doc:"Entry UUID"`
}

// GetEntryOutput is the Huma output for reading one diary entry.
type GetEntryOutput struct {
	Body Entry
}

func (h *Handler) get(ctx context.Context, input *GetEntryInput) (*GetEntryOutput, error) {
	entryID, err := uuid.FromString(input.EntryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid entryID", err)
	}

	entry, err := h.Diary.GetEntry(ctx, entryID)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			return nil, huma.Error404NotFound("diary entry not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch diary entry", err)
	}

	return &GetEntryOutput{Body: entryToAPI(*entry)}, nil
}

// ListEntriesInput is the Huma input for listing diary entries.
type ListEntriesInput struct {
	UserID string `path:"userID" doc:"Owner UUID"`
}

// ListEntriesOutput is the Huma output for listing diary entries.
type ListEntriesOutput struct {
	Body struct {
		Entries []Entry `json:"entries" doc:"The user's entries, newest day first"`
	}
}

func (h *Handler) list(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	entries, err := h.Diary.ListEntries(ctx, userID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list diary entries", err)
	}

	out := &ListEntriesOutput{}
	out.Body.Entries = make([]Entry, len(entries))
	for i, entry := range entries {
		out.Body.Entries[i] = entryToAPI(entry)
	}
	return out, nil
}

// UpdateEntryInput is the Huma input for updating a diary entry. The entry
// date is fixed at creation.
type UpdateEntryInput struct {
	EntryID string `path:"entryID" doc:"Entry UUID"`
	Body    struct {
		Title   *string `json:"title,omitempty" doc:"Entry title"`
		Content *string `json:"content,omitempty" doc:"Entry text"`
		Mood    *string `json:"mood,omitempty" enum:"happy,sad,excited,anxious,calm,angry,neutral" doc:"Mood for the day"`
	}
}

// UpdateEntryOutput is the Huma output for updating a diary entry.
type UpdateEntryOutput struct {
	Status int
}

func (h *Handler) update(ctx context.Context, input *UpdateEntryInput) (*UpdateEntryOutput, error) {
	entryID, err := uuid.FromString(input.EntryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid entryID", err)
	}

	err = h.Diary.UpdateEntry(ctx, entryID, service.DiaryEntryUpdate{
		Title:   input.Body.Title,
		Content: input.Body.Content,
		Mood:    input.Body.Mood,
	})
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			return nil, huma.Error404NotFound("diary entry not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update diary entry", err)
	}
	return &UpdateEntryOutput{Status: http.StatusNoContent}, nil
}

// DeleteEntryInput is the Huma input for deleting a diary entry.
type DeleteEntryInput struct {
	EntryID string `path:"entryID" doc:"Entry UUID"`
}

// DeleteEntryOutput is the Huma output for deleting a diary entry.
type DeleteEntryOutput struct {
	Status int
}

func (h *Handler) delete(ctx context.Context, input *DeleteEntryInput) (*DeleteEntryOutput, error) {
	entryID, err := uuid.FromString(input.EntryID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid entryID", err)
	}

	if err := h.Diary.DeleteEntry(ctx, entryID); err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			return nil, huma.Error404NotFound("diary entry not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete diary entry", err)
	}
	return &DeleteEntryOutput{Status: http.StatusNoContent}, nil
}
