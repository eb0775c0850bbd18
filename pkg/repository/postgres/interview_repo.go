package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/schedule"
)

// InterviewRepository implements schedule.Repository backed by PostgreSQL (pgx).
// One row per scheduled interview; batch_id groups the entries of a single
// generation run.
type InterviewRepository struct {
	pool *pgxpool.Pool
}

func NewInterviewRepository(pool *pgxpool.Pool) (*InterviewRepository, error) {
	repo := &InterviewRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *InterviewRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS interviews (
			id UUID PRIMARY KEY,
			batch_id UUID NOT NULL,
			owner_id UUID NOT NULL,
			candidate_id TEXT NOT NULL,
			candidate_name TEXT NOT NULL,
			candidate_email TEXT NOT NULL,
			interviewer_id TEXT NOT NULL,
			interviewer_name TEXT NOT NULL,
			interviewer_email TEXT NOT NULL,
			interview_date TEXT NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			duration_minutes INT NOT NULL,
			status TEXT NOT NULL,
			meeting_room TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			matching_score DOUBLE PRECISION NOT NULL,
			matching_reason TEXT NOT NULL,
			skill_gaps TEXT[] NOT NULL DEFAULT '{}',
			behavioral_question TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS interviews_batch_idx ON interviews (batch_id);
	`)
	return err
}

func (r *InterviewRepository) SaveBatch(ctx context.Context, ownerID, batchID uuid.UUID, entries []schedule.Entry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()
	for _, e := range entries {
		createdAt := e.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO interviews (
				id, batch_id, owner_id,
				candidate_id, candidate_name, candidate_email,
				interviewer_id, interviewer_name, interviewer_email,
				interview_date, start_time, end_time, duration_minutes,
				status, meeting_room, notes,
				matching_score, matching_reason, skill_gaps, behavioral_question,
				created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
		`,
			e.ID, batchID, ownerID,
			e.CandidateID, e.CandidateName, e.CandidateEmail,
			e.InterviewerID, e.InterviewerName, e.InterviewerEmail,
			e.Date, e.Time, e.EndTime, e.Duration,
			e.Status, e.MeetingRoom, e.Notes,
			e.MatchingScore, e.MatchingReason, e.SkillGaps, e.BehavioralQuestion,
			createdAt,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

const interviewColumns = `
	id, candidate_id, candidate_name, candidate_email,
	interviewer_id, interviewer_name, interviewer_email,
	interview_date, start_time, end_time, duration_minutes,
	status, meeting_room, notes,
	matching_score, matching_reason, skill_gaps, behavioral_question,
	created_at
`

func scanEntry(row pgx.Row) (schedule.Entry, error) {
	var e schedule.Entry
	var createdAt time.Time
	err := row.Scan(
		&e.ID, &e.CandidateID, &e.CandidateName, &e.CandidateEmail,
		&e.InterviewerID, &e.InterviewerName, &e.InterviewerEmail,
		&e.Date, &e.Time, &e.EndTime, &e.Duration,
		&e.Status, &e.MeetingRoom, &e.Notes,
		&e.MatchingScore, &e.MatchingReason, &e.SkillGaps, &e.BehavioralQuestion,
		&createdAt,
	)
	if err != nil {
		return schedule.Entry{}, err
	}
	e.CreatedAt = createdAt.UTC()
	if e.SkillGaps == nil {
		e.SkillGaps = []string{}
	}
	return e, nil
}

func (r *InterviewRepository) List(ctx context.Context, limit, offset int) ([]schedule.Entry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+interviewColumns+`
		FROM interviews
		ORDER BY created_at DESC, interview_date, start_time
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]schedule.Entry, 0, limit)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *InterviewRepository) GetByID(ctx context.Context, id uuid.UUID) (schedule.Entry, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+interviewColumns+`
		FROM interviews WHERE id = $1
	`, id)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Entry{}, schedule.ErrNotFound
		}
		return schedule.Entry{}, err
	}
	return e, nil
}
