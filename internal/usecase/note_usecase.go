package usecase

import (
	"context"
	"errors"

	"go-jobseeker-backend/internal/domain"
	"go-jobseeker-backend/pkg/apperror"
	"go-jobseeker-backend/pkg/logger"
	"go-jobseeker-backend/pkg/validation"
)

type noteUsecase struct {
	noteRepo  domain.NoteRepository
	minLength int
}

func NewNoteUsecase(noteRepo domain.NoteRepository, minLength int) domain.NoteUsecase {
	return &noteUsecase{
		noteRepo:  noteRepo,
		minLength: minLength,
	}
}

func (u *noteUsecase) ListNotes(ctx context.Context, jobseekerID int64) ([]domain.Note, error) {
	notes, err := u.noteRepo.ListByJobseeker(ctx, jobseekerID)
	if err != nil {
		logger.Log.Error("Error fetching notes", "jobseeker_id", jobseekerID, "error", err)
		return nil, apperror.Internal("Failed to fetch notes", err)
	}
	return notes, nil
}

func (u *noteUsecase) AddNote(ctx context.Context, jobseekerID int64, text string, actorID int64) (*domain.Note, error) {
	// Re-validate here rather than trusting the transport layer; the
	// stored value must always satisfy the length rule
	trimmed, err := validation.NoteText(text, u.minLength)
	if err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	note, err := u.noteRepo.Create(ctx, jobseekerID, trimmed, actorID)
	if err != nil {
		logger.Log.Error("Error adding note", "jobseeker_id", jobseekerID, "created_by", actorID, "error", err)
		return nil, apperror.Internal("Failed to add note", err)
	}
	return note, nil
}

func (u *noteUsecase) UpdateNote(ctx context.Context, noteID, jobseekerID int64, text string) (*domain.Note, error) {
	trimmed, err := validation.NoteText(text, u.minLength)
	if err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	note, err := u.noteRepo.Update(ctx, noteID, jobseekerID, trimmed)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Note not found")
		}
		logger.Log.Error("Error updating note", "note_id", noteID, "jobseeker_id", jobseekerID, "error", err)
		return nil, apperror.Internal("Failed to update note", err)
	}
	return note, nil
}

func (u *noteUsecase) DeleteNote(ctx context.Context, noteID, jobseekerID int64) error {
	err := u.noteRepo.Delete(ctx, noteID, jobseekerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Note not found")
		}
		logger.Log.Error("Error deleting note", "note_id", noteID, "jobseeker_id", jobseekerID, "error", err)
		return apperror.Internal("Failed to delete note", err)
	}
	return nil
}
