package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Note is one free-text annotation on a jobseeker. Only Text changes
// after creation; JobseekerID, CreatedBy and CreatedAt are immutable.
type Note struct {
	ID          int64     `json:"id"`
	JobseekerID int64     `json:"jobseeker_id"`
	Text        string    `json:"note"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	// Display name resolved by joining the authoring user; null when the
	// author row no longer exists
	CreatedByName *string `json:"created_by_name"`
}

type NoteRepository interface {
	// ListByJobseeker returns notes newest-first, author names resolved.
	// An unknown jobseeker yields an empty slice, not an error.
	ListByJobseeker(ctx context.Context, jobseekerID int64) ([]Note, error)
	// Create inserts a note with a server-assigned timestamp and returns
	// the stored row.
	Create(ctx context.Context, jobseekerID int64, text string, createdBy int64) (*Note, error)
	// Update overwrites the text of the note matching both ids. Returns
	// ErrNotFound when the compound match fails.
	Update(ctx context.Context, noteID, jobseekerID int64, text string) (*Note, error)
	// Delete removes the note matching both ids. Returns ErrNotFound when
	// the compound match fails.
	Delete(ctx context.Context, noteID, jobseekerID int64) error
}

type NoteUsecase interface {
	ListNotes(ctx context.Context, jobseekerID int64) ([]Note, error)
	AddNote(ctx context.Context, jobseekerID int64, text string, actorID int64) (*Note, error)
	UpdateNote(ctx context.Context, noteID, jobseekerID int64, text string) (*Note, error)
	DeleteNote(ctx context.Context, noteID, jobseekerID int64) error
}
