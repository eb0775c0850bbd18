package note

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyContent = errors.New("note content is required")
	ErrNoAuthor     = errors.New("note author is required")
)

// Note is one append-only entry in an interview's collaboration thread.
// Notes are immutable once written; there is no edit or delete.
type Note struct {
	ID          uuid.UUID `json:"id"`
	InterviewID uuid.UUID `json:"interviewId"`
	Content     string    `json:"content"`
	AuthorName  string    `json:"authorName"`
	AuthorEmail string    `json:"authorEmail"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Repository persists note threads. List returns newest-first.
type Repository interface {
	Append(ctx context.Context, n Note) error
	ListByInterview(ctx context.Context, interviewID uuid.UUID) ([]Note, error)
}
