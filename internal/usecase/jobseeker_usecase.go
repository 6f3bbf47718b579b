package usecase

import (
	"context"
	"errors"

	"go-jobseeker-backend/internal/domain"
	"go-jobseeker-backend/pkg/apperror"
	"go-jobseeker-backend/pkg/logger"
)

type jobseekerUsecase struct {
	jobseekerRepo domain.JobseekerRepository
}

func NewJobseekerUsecase(jobseekerRepo domain.JobseekerRepository) domain.JobseekerUsecase {
	return &jobseekerUsecase{jobseekerRepo: jobseekerRepo}
}

func (u *jobseekerUsecase) ListJobseekers(ctx context.Context) ([]domain.Jobseeker, error) {
	seekers, err := u.jobseekerRepo.Fetch(ctx)
	if err != nil {
		logger.Log.Error("Error fetching jobseekers", "error", err)
		return nil, apperror.Internal("Failed to fetch jobseekers", err)
	}
	return seekers, nil
}

func (u *jobseekerUsecase) GetJobseeker(ctx context.Context, id int64) (*domain.Jobseeker, error) {
	js, err := u.jobseekerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Jobseeker not found")
		}
		logger.Log.Error("Error fetching jobseeker", "jobseeker_id", id, "error", err)
		return nil, apperror.Internal("Failed to fetch jobseeker", err)
	}
	return js, nil
}
