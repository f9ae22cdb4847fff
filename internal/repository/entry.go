package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/oatpass/oatpass-go/internal/model"
)

var ErrEntryNotFound = errors.New("entry not found")

// EntryRepository handles saved password entry persistence.
type EntryRepository struct {
	db *sql.DB
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(db *sql.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// Create inserts a new entry and sets the generated ID on the entry struct.
func (r *EntryRepository) Create(ctx context.Context, entry *model.Entry) error {
	query := `INSERT INTO entries (user_id, label, ciphertext, length) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		entry.UserID, entry.Label, entry.Ciphertext, entry.Length)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	entry.ID = id
	return nil
}

// GetByID retrieves an entry owned by the given user.
func (r *EntryRepository) GetByID(ctx context.Context, userID, id int64) (*model.Entry, error) {
	query := `SELECT id, user_id, label, ciphertext, length, created_at, updated_at
		FROM entries WHERE user_id = ? AND id = ?`

	entry := &model.Entry{}
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(
		&entry.ID, &entry.UserID, &entry.Label, &entry.Ciphertext,
		&entry.Length, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	return entry, nil
}

// ListByUser retrieves all entries for a user, most recently updated first.
func (r *EntryRepository) ListByUser(ctx context.Context, userID int64) ([]model.Entry, error) {
	query := `SELECT id, user_id, label, ciphertext, length, created_at, updated_at
		FROM entries WHERE user_id = ? ORDER BY updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		var e model.Entry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Label, &e.Ciphertext,
			&e.Length, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Update replaces the label and ciphertext of an entry owned by the user.
func (r *EntryRepository) Update(ctx context.Context, entry *model.Entry) error {
	query := `UPDATE entries SET label = ?, ciphertext = ?, length = ?
		WHERE user_id = ? AND id = ?`

	result, err := r.db.ExecContext(ctx, query,
		entry.Label, entry.Ciphertext, entry.Length, entry.UserID, entry.ID)
	if err != nil {
		return err
	}

	return requireRow(result)
}

// Delete removes an entry owned by the user.
func (r *EntryRepository) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM entries WHERE user_id = ? AND id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}

	return requireRow(result)
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
