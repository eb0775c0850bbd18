package note

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/schedule"
)

// Author identifies the authenticated writer of a note.
type Author struct {
	Name  string
	Email string
}

// UseCase covers the note thread of one scheduled interview.
type UseCase interface {
	Add(ctx context.Context, interviewID uuid.UUID, author Author, content string) (Note, error)
	List(ctx context.Context, interviewID uuid.UUID) ([]Note, error)
	// Watch subscribes to full thread snapshots until ctx is done.
	Watch(ctx context.Context, interviewID uuid.UUID) (<-chan []Note, error)
}

// Publisher delivers full thread snapshots to live subscribers.
type Publisher interface {
	Publish(topic string, snapshot any)
	Subscribe(ctx context.Context, topic string) <-chan any
}

type service struct {
	repo       Repository
	interviews schedule.Repository
	pub        Publisher
}

func NewService(repo Repository, interviews schedule.Repository, pub Publisher) UseCase {
	return &service{repo: repo, interviews: interviews, pub: pub}
}

func (s *service) Add(ctx context.Context, interviewID uuid.UUID, author Author, content string) (Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Note{}, ErrEmptyContent
	}
	if strings.TrimSpace(author.Email) == "" {
		return Note{}, ErrNoAuthor
	}
	if _, err := s.interviews.GetByID(ctx, interviewID); err != nil {
		return Note{}, err
	}
	name := strings.TrimSpace(author.Name)
	if name == "" {
		name = author.Email
	}
	n := Note{
		ID:          uuid.New(),
		InterviewID: interviewID,
		Content:     content,
		AuthorName:  name,
		AuthorEmail: author.Email,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Append(ctx, n); err != nil {
		return Note{}, err
	}
	s.publishSnapshot(ctx, interviewID)
	return n, nil
}

func (s *service) List(ctx context.Context, interviewID uuid.UUID) ([]Note, error) {
	return s.repo.ListByInterview(ctx, interviewID)
}

func (s *service) Watch(ctx context.Context, interviewID uuid.UUID) (<-chan []Note, error) {
	if _, err := s.interviews.GetByID(ctx, interviewID); err != nil {
		return nil, err
	}
	out := make(chan []Note, 1)
	if snapshot, err := s.repo.ListByInterview(ctx, interviewID); err == nil {
		out <- snapshot
	}
	in := s.pub.Subscribe(ctx, topic(interviewID))
	go func() {
		defer close(out)
		for v := range in {
			snapshot, ok := v.([]Note)
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
	return out, nil
}

func (s *service) publishSnapshot(ctx context.Context, interviewID uuid.UUID) {
	snapshot, err := s.repo.ListByInterview(ctx, interviewID)
	if err != nil {
		return
	}
	s.pub.Publish(topic(interviewID), snapshot)
}

func topic(interviewID uuid.UUID) string {
	return "interview-notes:" + interviewID.String()
}
