package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SchemaVersion is bumped whenever the draft record shape changes; Load
// migrates older records forward.
const SchemaVersion = 1

// ErrNoDraft is returned when the user has no saved draft.
var ErrNoDraft = errors.New("no draft saved")

// Draft is the in-progress request state cached per user. File content is
// never serialized, only the roster filename is remembered.
type Draft struct {
	Version        int             `json:"version"`
	JobDescription string          `json:"jobDescription"`
	InterviewerIDs []string        `json:"interviewerIds"`
	RosterFilename string          `json:"rosterFilename"`
	LastResult     json.RawMessage `json:"lastResult,omitempty"`
	SavedAt        time.Time       `json:"savedAt"`
}

// Store keeps one draft per user under a fixed key. Writes are
// last-writer-wins.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &Store{rdb: rdb, ttl: ttl}
}

func key(userID string) string {
	return "scheduler:draft:" + userID
}

// Save overwrites the user's draft. SavedAt and Version are stamped here so
// callers cannot persist stale metadata.
func (s *Store) Save(ctx context.Context, userID string, d Draft) (Draft, error) {
	d.Version = SchemaVersion
	d.SavedAt = time.Now().UTC()
	data, err := json.Marshal(d)
	if err != nil {
		return Draft{}, err
	}
	if err := s.rdb.Set(ctx, key(userID), data, s.ttl).Err(); err != nil {
		return Draft{}, fmt.Errorf("save draft: %w", err)
	}
	return d, nil
}

// Load returns the user's draft, migrating older schema versions forward.
func (s *Store) Load(ctx context.Context, userID string) (Draft, error) {
	data, err := s.rdb.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Draft{}, ErrNoDraft
	}
	if err != nil {
		return Draft{}, fmt.Errorf("load draft: %w", err)
	}
	var d Draft
	if err := json.Unmarshal(data, &d); err != nil {
		// an unreadable draft is treated as absent rather than poisoning the form
		return Draft{}, ErrNoDraft
	}
	return migrate(d), nil
}

// Clear wipes the user's draft.
func (s *Store) Clear(ctx context.Context, userID string) error {
	if err := s.rdb.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

func migrate(d Draft) Draft {
	// Version 0 records predate the version field itself; nothing else has
	// changed shape yet.
	if d.Version < SchemaVersion {
		d.Version = SchemaVersion
	}
	if d.InterviewerIDs == nil {
		d.InterviewerIDs = []string{}
	}
	return d
}
