package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"go-jobseeker-backend/internal/domain"
)

type jobseekerRepo struct {
	db *pgxpool.Pool
}

func NewJobseekerRepository(db *pgxpool.Pool) domain.JobseekerRepository {
	return &jobseekerRepo{db: db}
}

func (r *jobseekerRepo) Fetch(ctx context.Context) ([]domain.Jobseeker, error) {
	query := `SELECT id, name, email, phone, location, experience_years, skills, status, created_at
              FROM jobseekers ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seekers := []domain.Jobseeker{}
	for rows.Next() {
		var js domain.Jobseeker
		if err := rows.Scan(&js.ID, &js.Name, &js.Email, &js.Phone, &js.Location,
			&js.ExperienceYears, pq.Array(&js.Skills), &js.Status, &js.CreatedAt); err != nil {
			return nil, err
		}
		seekers = append(seekers, js)
	}
	return seekers, rows.Err()
}

func (r *jobseekerRepo) GetByID(ctx context.Context, id int64) (*domain.Jobseeker, error) {
	query := `SELECT id, name, email, phone, location, experience_years, skills, status, created_at
              FROM jobseekers WHERE id = $1`

	var js domain.Jobseeker
	err := r.db.QueryRow(ctx, query, id).Scan(&js.ID, &js.Name, &js.Email, &js.Phone, &js.Location,
		&js.ExperienceYears, pq.Array(&js.Skills), &js.Status, &js.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &js, nil
}
