package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/interviewer"
)

// InterviewerRepository implements interviewer.Repository backed by PostgreSQL (pgx).
type InterviewerRepository struct {
	pool *pgxpool.Pool
}

func NewInterviewerRepository(pool *pgxpool.Pool) (*InterviewerRepository, error) {
	repo := &InterviewerRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *InterviewerRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS interviewers (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			specialization TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func (r *InterviewerRepository) Create(ctx context.Context, iv interviewer.Interviewer) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO interviewers (id, name, email, specialization, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, iv.ID, iv.Name, iv.Email, iv.Specialization, iv.CreatedAt, iv.UpdatedAt)
	return err
}

func (r *InterviewerRepository) List(ctx context.Context) ([]interviewer.Interviewer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, specialization, created_at, updated_at
		FROM interviewers ORDER BY created_at DESC, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]interviewer.Interviewer, 0)
	for rows.Next() {
		var iv interviewer.Interviewer
		if err := rows.Scan(&iv.ID, &iv.Name, &iv.Email, &iv.Specialization, &iv.CreatedAt, &iv.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, rows.Err()
}

func (r *InterviewerRepository) GetByID(ctx context.Context, id uuid.UUID) (interviewer.Interviewer, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, specialization, created_at, updated_at
		FROM interviewers WHERE id = $1
	`, id)
	var iv interviewer.Interviewer
	if err := row.Scan(&iv.ID, &iv.Name, &iv.Email, &iv.Specialization, &iv.CreatedAt, &iv.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return interviewer.Interviewer{}, interviewer.ErrNotFound
		}
		return interviewer.Interviewer{}, err
	}
	return iv, nil
}

func (r *InterviewerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM interviewers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return interviewer.ErrNotFound
	}
	return nil
}
