package interviewer

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase covers directory management and identifier resolution.
type UseCase interface {
	Add(ctx context.Context, name, email, specialization string) (Interviewer, error)
	List(ctx context.Context) ([]Interviewer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Resolve maps identifiers to stored records. Identifiers that do not
	// resolve are dropped; deciding whether an empty result is fatal is the
	// caller's concern.
	Resolve(ctx context.Context, ids []string) ([]Interviewer, error)
	// Watch subscribes to full directory snapshots until ctx is done.
	Watch(ctx context.Context) <-chan []Interviewer
}

// Publisher delivers full directory snapshots to live subscribers.
type Publisher interface {
	Publish(topic string, snapshot any)
	Subscribe(ctx context.Context, topic string) <-chan any
}

const watchTopic = "interviewers"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type service struct {
	repo Repository
	pub  Publisher
}

func NewService(repo Repository, pub Publisher) UseCase {
	return &service{repo: repo, pub: pub}
}

func (s *service) Add(ctx context.Context, name, email, specialization string) (Interviewer, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	specialization = strings.ToLower(strings.TrimSpace(specialization))
	if name == "" {
		return Interviewer{}, ErrInvalidName
	}
	if !emailRe.MatchString(email) {
		return Interviewer{}, ErrInvalidEmail
	}
	if !ValidSpecialization(specialization) {
		return Interviewer{}, ErrUnknownSpecialization
	}
	now := time.Now().UTC()
	iv := Interviewer{
		ID:             uuid.New(),
		Name:           name,
		Email:          email,
		Specialization: specialization,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, iv); err != nil {
		return Interviewer{}, err
	}
	s.publishSnapshot(ctx)
	return iv, nil
}

func (s *service) List(ctx context.Context) ([]Interviewer, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publishSnapshot(ctx)
	return nil
}

func (s *service) Resolve(ctx context.Context, ids []string) ([]Interviewer, error) {
	var out []Interviewer
	for _, raw := range ids {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		iv, err := s.repo.GetByID(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, nil
}

func (s *service) Watch(ctx context.Context) <-chan []Interviewer {
	out := make(chan []Interviewer, 1)
	if snapshot, err := s.repo.List(ctx); err == nil {
		out <- snapshot
	}
	in := s.pub.Subscribe(ctx, watchTopic)
	go func() {
		defer close(out)
		for v := range in {
			snapshot, ok := v.([]Interviewer)
			if !ok {
				continue
			}
			select {
			case out <- snapshot:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func (s *service) publishSnapshot(ctx context.Context) {
	snapshot, err := s.repo.List(ctx)
	if err != nil {
		return
	}
	s.pub.Publish(watchTopic, snapshot)
}
