package repository

import (
	"database/sql"
	"fmt"

	"intellinote-be/internal/apperrors"
	"intellinote-be/internal/entities"
)

// NoteRepository defines the interface for note database operations.
// Every query is scoped to the owning user, so a note belonging to another
// user is indistinguishable from a missing one.
type NoteRepository interface {
	Create(userID, title, content string) (*entities.Note, error)
	GetByUserID(userID string) ([]*entities.Note, error)
	FindByID(userID, id string) (*entities.Note, error)
	Update(userID, id, title, content string) (*entities.Note, error)
	Delete(userID, id string) error
}

type noteRepository struct {
	db *sql.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *sql.DB) NoteRepository {
	return &noteRepository{db: db}
}

// Create inserts a new note owned by userID
func (r *noteRepository) Create(userID, title, content string) (*entities.Note, error) {
	query := `
		INSERT INTO notes (user_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, title, content, created_at, updated_at
	`

	var note entities.Note
	err := r.db.QueryRow(query, userID, title, content).Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
		&note.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return &note, nil
}

// GetByUserID retrieves all notes owned by userID, most recently touched first
func (r *noteRepository) GetByUserID(userID string) ([]*entities.Note, error) {
	query := `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM notes
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}
	defer rows.Close()

	var notes []*entities.Note
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(
			&note.ID,
			&note.UserID,
			&note.Title,
			&note.Content,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}

	return notes, nil
}

// FindByID finds a single note by ID, only if owned by userID
func (r *noteRepository) FindByID(userID, id string) (*entities.Note, error) {
	query := `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM notes
		WHERE id = $1 AND user_id = $2
	`

	var note entities.Note
	err := r.db.QueryRow(query, id, userID).Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
		&note.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find note: %w", err)
	}

	return &note, nil
}

// Update replaces title and content wholesale and refreshes updated_at,
// only if the note is owned by userID
func (r *noteRepository) Update(userID, id, title, content string) (*entities.Note, error) {
	query := `
		UPDATE notes
		SET title = $1, content = $2, updated_at = (NOW() AT TIME ZONE 'UTC')
		WHERE id = $3 AND user_id = $4
		RETURNING id, user_id, title, content, created_at, updated_at
	`

	var note entities.Note
	err := r.db.QueryRow(query, title, content, id, userID).Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
		&note.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &note, nil
}

// Delete permanently removes a note, only if owned by userID.
// Deleting an already-deleted note reports ErrNoteNotFound.
func (r *noteRepository) Delete(userID, id string) error {
	query := `DELETE FROM notes WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrNoteNotFound
	}

	return nil
}
