package interviewer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound              = errors.New("interviewer not found")
	ErrInvalidName           = errors.New("interviewer name is required")
	ErrInvalidEmail          = errors.New("interviewer email is invalid")
	ErrUnknownSpecialization = errors.New("unknown specialization")
)

// Interviewer is a directory entry. Specialization is one of the fixed
// enumeration below or empty for a general interviewer.
type Interviewer struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Specialization string    `json:"specialization,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Specializations is the fixed enumeration offered by the directory.
var Specializations = []string{
	"frontend", "backend", "fullstack", "mobile", "devops", "data",
	"ai-ml", "security", "qa", "product", "design", "leadership",
}

// ValidSpecialization accepts the empty string (general) and any value from
// the enumeration.
func ValidSpecialization(s string) bool {
	if s == "" {
		return true
	}
	for _, v := range Specializations {
		if v == s {
			return true
		}
	}
	return false
}

// Repository abstracts directory persistence. List returns the directory
// newest first.
type Repository interface {
	Create(ctx context.Context, iv Interviewer) error
	List(ctx context.Context) ([]Interviewer, error)
	GetByID(ctx context.Context, id uuid.UUID) (Interviewer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
