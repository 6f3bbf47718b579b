package domain

import (
	"context"
	"time"
)

type Jobseeker struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone"`
	Location        *string   `json:"location"`
	ExperienceYears int       `json:"experience_years"`
	Skills          []string  `json:"skills"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type JobseekerRepository interface {
	Fetch(ctx context.Context) ([]Jobseeker, error)
	GetByID(ctx context.Context, id int64) (*Jobseeker, error)
}

type JobseekerUsecase interface {
	ListJobseekers(ctx context.Context) ([]Jobseeker, error)
	GetJobseeker(ctx context.Context, id int64) (*Jobseeker, error)
}
