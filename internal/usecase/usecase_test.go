package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-jobseeker-backend/internal/domain"
	"go-jobseeker-backend/internal/usecase"
	"go-jobseeker-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockNoteRepo struct {
	mock.Mock
}

func (m *MockNoteRepo) ListByJobseeker(ctx context.Context, jobseekerID int64) ([]domain.Note, error) {
	args := m.Called(ctx, jobseekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Note), args.Error(1)
}

func (m *MockNoteRepo) Create(ctx context.Context, jobseekerID int64, text string, createdBy int64) (*domain.Note, error) {
	args := m.Called(ctx, jobseekerID, text, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *MockNoteRepo) Update(ctx context.Context, noteID, jobseekerID int64, text string) (*domain.Note, error) {
	args := m.Called(ctx, noteID, jobseekerID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *MockNoteRepo) Delete(ctx context.Context, noteID, jobseekerID int64) error {
	return m.Called(ctx, noteID, jobseekerID).Error(0)
}

type MockJobseekerRepo struct {
	mock.Mock
}

func (m *MockJobseekerRepo) Fetch(ctx context.Context) ([]domain.Jobseeker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Jobseeker), args.Error(1)
}

func (m *MockJobseekerRepo) GetByID(ctx context.Context, id int64) (*domain.Jobseeker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Jobseeker), args.Error(1)
}

const validNote = "This note has exactly twenty chars."

func TestAddNoteValidation(t *testing.T) {
	mockRepo := new(MockNoteRepo)
	uc := usecase.NewNoteUsecase(mockRepo, 20)

	t.Run("Should reject short note before touching the repository", func(t *testing.T) {
		_, err := uc.AddNote(context.Background(), 1, "x", 7)
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.Code)
		assert.Equal(t, "Note must be at least 20 characters long", appErr.Message)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject whitespace padding around a short note", func(t *testing.T) {
		_, err := uc.AddNote(context.Background(), 1, "   short   ", 7)
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should store the trimmed text", func(t *testing.T) {
		want := &domain.Note{ID: 10, JobseekerID: 1, Text: validNote, CreatedBy: 7, CreatedAt: time.Now()}
		mockRepo.On("Create", mock.Anything, int64(1), validNote, int64(7)).Return(want, nil).Once()

		note, err := uc.AddNote(context.Background(), 1, "  "+validNote+"  ", 7)
		assert.NoError(t, err)
		assert.Equal(t, want, note)
		mockRepo.AssertExpectations(t)
	})
}

func TestAddNoteStorageFailure(t *testing.T) {
	mockRepo := new(MockNoteRepo)
	uc := usecase.NewNoteUsecase(mockRepo, 20)

	mockRepo.On("Create", mock.Anything, int64(1), validNote, int64(7)).
		Return(nil, errors.New("connection reset")).Once()

	_, err := uc.AddNote(context.Background(), 1, validNote, 7)

	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.Code)
	// Internal detail must not leak into the user-facing message
	assert.Equal(t, "Failed to add note", appErr.Message)
}

func TestUpdateNoteScoping(t *testing.T) {
	mockRepo := new(MockNoteRepo)
	uc := usecase.NewNoteUsecase(mockRepo, 20)

	t.Run("Should map compound-key miss to 404", func(t *testing.T) {
		mockRepo.On("Update", mock.Anything, int64(5), int64(2), validNote).
			Return(nil, domain.ErrNotFound).Once()

		_, err := uc.UpdateNote(context.Background(), 5, 2, validNote)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "Note not found", appErr.Message)
	})

	t.Run("Should map a row vanished during read-back to 404", func(t *testing.T) {
		// A concurrent delete can land between the UPDATE and the
		// repository's re-read; that still means the note is gone.
		mockRepo.On("Update", mock.Anything, int64(6), int64(2), validNote).
			Return(nil, domain.ErrNotFound).Once()

		_, err := uc.UpdateNote(context.Background(), 6, 2, validNote)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "Note not found", appErr.Message)
	})

	t.Run("Should validate before touching the repository", func(t *testing.T) {
		_, err := uc.UpdateNote(context.Background(), 5, 2, "too short")
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, int64(5), int64(2), "too short")
	})

	t.Run("Should return post-update row", func(t *testing.T) {
		want := &domain.Note{ID: 5, JobseekerID: 1, Text: validNote}
		mockRepo.On("Update", mock.Anything, int64(5), int64(1), validNote).Return(want, nil).Once()

		note, err := uc.UpdateNote(context.Background(), 5, 1, validNote)
		assert.NoError(t, err)
		assert.Equal(t, want, note)
	})
}

func TestDeleteNote(t *testing.T) {
	mockRepo := new(MockNoteRepo)
	uc := usecase.NewNoteUsecase(mockRepo, 20)

	t.Run("Should succeed on first delete", func(t *testing.T) {
		mockRepo.On("Delete", mock.Anything, int64(9), int64(3)).Return(nil).Once()
		assert.NoError(t, uc.DeleteNote(context.Background(), 9, 3))
	})

	t.Run("Should return 404 on second delete of the same note", func(t *testing.T) {
		mockRepo.On("Delete", mock.Anything, int64(9), int64(3)).Return(domain.ErrNotFound).Once()

		err := uc.DeleteNote(context.Background(), 9, 3)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
	})
}

func TestListNotes(t *testing.T) {
	mockRepo := new(MockNoteRepo)
	uc := usecase.NewNoteUsecase(mockRepo, 20)

	t.Run("Should pass through an empty result", func(t *testing.T) {
		mockRepo.On("ListByJobseeker", mock.Anything, int64(42)).Return([]domain.Note{}, nil).Once()

		notes, err := uc.ListNotes(context.Background(), 42)
		assert.NoError(t, err)
		assert.Empty(t, notes)
		assert.NotNil(t, notes)
	})

	t.Run("Should wrap storage errors with a generic message", func(t *testing.T) {
		mockRepo.On("ListByJobseeker", mock.Anything, int64(42)).
			Return(nil, errors.New("timeout")).Once()

		_, err := uc.ListNotes(context.Background(), 42)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 500, appErr.Code)
		assert.Equal(t, "Failed to fetch notes", appErr.Message)
	})
}

func TestGetJobseeker(t *testing.T) {
	mockRepo := new(MockJobseekerRepo)
	uc := usecase.NewJobseekerUsecase(mockRepo)

	t.Run("Should map missing row to 404", func(t *testing.T) {
		mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound).Once()

		_, err := uc.GetJobseeker(context.Background(), 99)
		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.Code)
		assert.Equal(t, "Jobseeker not found", appErr.Message)
	})

	t.Run("Should return the row when present", func(t *testing.T) {
		want := &domain.Jobseeker{ID: 1, Name: "Jane Doe", Status: "active"}
		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(want, nil).Once()

		js, err := uc.GetJobseeker(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, want, js)
	})
}
