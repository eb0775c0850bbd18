package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a recruiter account. Name and Email
// travel into issued tokens so downstream features can attribute actions
// (interview notes carry authorship) without a DB lookup.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
