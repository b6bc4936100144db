package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"intellinote-be/internal/apperrors"
	"intellinote-be/internal/cache"
	"intellinote-be/internal/entities"
	"intellinote-be/internal/repository"
)

// listCacheTTL bounds how stale a cached note list can get if an
// invalidation is ever missed.
const listCacheTTL = 5 * time.Minute

// NoteService defines the interface for note business logic.
// Every operation is scoped to the authenticated owner.
type NoteService interface {
	Create(userID, title, content string) (*entities.Note, error)
	List(userID string) ([]*entities.Note, error)
	Get(userID, id string) (*entities.Note, error)
	Update(userID, id, title, content string) (*entities.Note, error)
	Delete(userID, id string) error
}

type noteService struct {
	repo  repository.NoteRepository
	cache cache.Cache
	ctx   context.Context
}

// NewNoteService creates a new note service. cacheClient may be nil,
// in which case every list goes to the database.
func NewNoteService(repo repository.NoteRepository, cacheClient cache.Cache) NoteService {
	svc := &noteService{
		repo: repo,
		ctx:  context.Background(),
	}
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

func listCacheKey(userID string) string {
	return fmt.Sprintf("notes:user:%s", userID)
}

// validateNoteID rejects malformed note IDs before they reach the database.
// A malformed ID reports the same error as a missing note.
func validateNoteID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrNoteNotFound
	}
	return nil
}

// Create stores a new note owned by userID
func (s *noteService) Create(userID, title, content string) (*entities.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.ErrEmptyTitle
	}

	note, err := s.repo.Create(userID, title, content)
	if err != nil {
		return nil, err
	}

	s.invalidateList(userID)
	return note, nil
}

// List returns all notes owned by userID, most recently touched first
func (s *noteService) List(userID string) ([]*entities.Note, error) {
	if s.cache != nil {
		var cached []*entities.Note
		if err := s.cache.GetJSON(s.ctx, listCacheKey(userID), &cached); err == nil {
			return cached, nil
		}
	}

	notes, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		// Best effort; a failed cache write never fails the request
		_ = s.cache.SetJSON(s.ctx, listCacheKey(userID), notes, listCacheTTL)
	}

	return notes, nil
}

// Get returns a single note owned by userID
func (s *noteService) Get(userID, id string) (*entities.Note, error) {
	if err := validateNoteID(id); err != nil {
		return nil, err
	}
	return s.repo.FindByID(userID, id)
}

// Update replaces title and content wholesale and refreshes updated_at
func (s *noteService) Update(userID, id, title, content string) (*entities.Note, error) {
	if err := validateNoteID(id); err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.ErrEmptyTitle
	}

	note, err := s.repo.Update(userID, id, title, content)
	if err != nil {
		return nil, err
	}

	s.invalidateList(userID)
	return note, nil
}

// Delete permanently removes a note owned by userID
func (s *noteService) Delete(userID, id string) error {
	if err := validateNoteID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(userID, id); err != nil {
		return err
	}

	s.invalidateList(userID)
	return nil
}

func (s *noteService) invalidateList(userID string) {
	if s.cache != nil {
		_ = s.cache.Delete(s.ctx, listCacheKey(userID))
	}
}
