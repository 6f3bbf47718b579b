package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobseeker-backend/internal/domain"
	"go-jobseeker-backend/pkg/logger"
)

type noteRepo struct {
	db *pgxpool.Pool
}

func NewNoteRepository(db *pgxpool.Pool) domain.NoteRepository {
	return &noteRepo{db: db}
}

// noteColumns is the joined projection shared by every read. The LEFT
// JOIN keeps notes visible even when the authoring user was removed.
const noteColumns = `
	SELECT jn.id, jn.jobseeker_id, jn.note, jn.created_by, jn.created_at, u.name AS created_by_name
	FROM jobseeker_notes jn
	LEFT JOIN users u ON jn.created_by = u.id`

func (r *noteRepo) ListByJobseeker(ctx context.Context, jobseekerID int64) ([]domain.Note, error) {
	query := noteColumns + `
	WHERE jn.jobseeker_id = $1
	ORDER BY jn.created_at DESC, jn.id DESC`

	rows, err := r.db.Query(ctx, query, jobseekerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.JobseekerID, &n.Text, &n.CreatedBy, &n.CreatedAt, &n.CreatedByName); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *noteRepo) Create(ctx context.Context, jobseekerID int64, text string, createdBy int64) (*domain.Note, error) {
	// created_at comes from the database clock, never from the client
	query := `INSERT INTO jobseeker_notes (jobseeker_id, note, created_by)
              VALUES ($1, $2, $3) RETURNING id, created_at`

	var note domain.Note
	note.JobseekerID = jobseekerID
	note.Text = text
	note.CreatedBy = createdBy
	err := r.db.QueryRow(ctx, query, jobseekerID, text, createdBy).Scan(&note.ID, &note.CreatedAt)
	if err != nil {
		return nil, err
	}

	// Best-effort re-read to attach the author name. The insert already
	// committed, so a failure here must not turn success into an error.
	enriched, err := r.getByID(ctx, note.ID)
	if err != nil {
		logger.Log.Warn("note created but enrichment read failed",
			"note_id", note.ID, "jobseeker_id", jobseekerID, "error", err)
		return &note, nil
	}
	return enriched, nil
}

func (r *noteRepo) Update(ctx context.Context, noteID, jobseekerID int64, text string) (*domain.Note, error) {
	// Scoping by both keys prevents editing a note that belongs to a
	// different jobseeker via a guessed note id
	query := `UPDATE jobseeker_notes SET note = $1 WHERE id = $2 AND jobseeker_id = $3`
	result, err := r.db.Exec(ctx, query, text, noteID, jobseekerID)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	return r.getByID(ctx, noteID)
}

func (r *noteRepo) Delete(ctx context.Context, noteID, jobseekerID int64) error {
	query := `DELETE FROM jobseeker_notes WHERE id = $1 AND jobseeker_id = $2`
	result, err := r.db.Exec(ctx, query, noteID, jobseekerID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *noteRepo) getByID(ctx context.Context, id int64) (*domain.Note, error) {
	query := noteColumns + ` WHERE jn.id = $1`

	var n domain.Note
	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.JobseekerID, &n.Text, &n.CreatedBy, &n.CreatedAt, &n.CreatedByName,
	)
	if err != nil {
		// The note can disappear between the write and this read.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}
