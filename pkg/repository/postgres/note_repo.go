package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/note"
)

// NoteRepository implements note.Repository backed by PostgreSQL (pgx).
// Notes are append-only; there is no update or delete.
type NoteRepository struct {
	pool *pgxpool.Pool
}

func NewNoteRepository(pool *pgxpool.Pool) (*NoteRepository, error) {
	repo := &NoteRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *NoteRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS interview_notes (
			id UUID PRIMARY KEY,
			interview_id UUID NOT NULL,
			content TEXT NOT NULL,
			author_name TEXT NOT NULL,
			author_email TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS interview_notes_interview_idx ON interview_notes (interview_id);
	`)
	return err
}

func (r *NoteRepository) Append(ctx context.Context, n note.Note) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO interview_notes (id, interview_id, content, author_name, author_email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, n.ID, n.InterviewID, n.Content, n.AuthorName, n.AuthorEmail, n.CreatedAt)
	return err
}

func (r *NoteRepository) ListByInterview(ctx context.Context, interviewID uuid.UUID) ([]note.Note, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, interview_id, content, author_name, author_email, created_at
		FROM interview_notes
		WHERE interview_id = $1
		ORDER BY created_at DESC, id
	`, interviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]note.Note, 0)
	for rows.Next() {
		var n note.Note
		var createdAt time.Time
		if err := rows.Scan(&n.ID, &n.InterviewID, &n.Content, &n.AuthorName, &n.AuthorEmail, &createdAt); err != nil {
			return nil, err
		}
		n.CreatedAt = createdAt.UTC()
		out = append(out, n)
	}
	return out, rows.Err()
}
