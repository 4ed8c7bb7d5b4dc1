package diary

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/storage/sqlexec"
)

// DiaryTable provides access to the diary_entries table.
type DiaryTable struct {
	exec sqlexec.Queryer
}

// Ensure DiaryTable implements IDiaryTable at compile time.
var _ IDiaryTable = (*DiaryTable)(nil)

// NewDiaryTable creates a DiaryTable over the given executor.
func NewDiaryTable(exec sqlexec.Queryer) *DiaryTable {
	return &DiaryTable{exec: exec}
}

const entryColumns = `id, user_id, entry_date, title, content, mood, created_at, updated_at`

func scanEntry(row interface{ Scan(...any) error }) (*Entry, error) {
	var e Entry
	err := row.Scan(
		&e.ID, &e.UserID, &e.EntryDate, &e.Title, &e.Content, &e.Mood,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// FindByID retrieves a diary entry by primary key.
func (t *DiaryTable) FindByID(ctx context.Context, id uuid.UUID) (*Entry, error) {
	row, err := scanEntry(t.exec.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM diary_entries WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return row, err
}

// ListByUser returns all diary entries for a user, most recent day first.
func (t *DiaryTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Entry, error) {
	rows, err := t.exec.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM diary_entries WHERE user_id = $1 ORDER BY entry_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}

// Insert creates a new diary entry and returns its generated ID. The unique
// (user_id, entry_date) index surfaces duplicate days as an insert error.
func (t *DiaryTable) Insert(ctx context.Context, create *EntryCreate) (uuid.UUID, error) {
	var id uuid.UUID
	err := t.exec.QueryRowContext(ctx,
		`INSERT INTO diary_entries (user_id, entry_date, title, content, mood)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		create.UserID, create.EntryDate, create.Title, create.Content, create.Mood,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update writes all mutable columns of a diary entry. Returns false when no
// row matched.
func (t *DiaryTable) Update(ctx context.Context, entry *Entry) (bool, error) {
	result, err := t.exec.ExecContext(ctx,
		`UPDATE diary_entries
		 SET entry_date = $2, title = $3, content = $4, mood = $5, updated_at = now()
		 WHERE id = $1`,
		entry.ID, entry.EntryDate, entry.Title, entry.Content, entry.Mood)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Delete removes a diary entry. Returns false when no row matched.
func (t *DiaryTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := t.exec.ExecContext(ctx, `DELETE FROM diary_entries WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
