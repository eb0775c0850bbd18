package schedule

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/candidate"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/interviewer"
)

const usecaseRoster = "name,email\nAlice,alice@example.com\nBob,bob@example.com\n"

type fakeDirectory struct {
	ivs        []interviewer.Interviewer
	resolveErr error
}

func (f *fakeDirectory) Add(ctx context.Context, name, email, specialization string) (interviewer.Interviewer, error) {
	return interviewer.Interviewer{}, nil
}
func (f *fakeDirectory) List(ctx context.Context) ([]interviewer.Interviewer, error) {
	return f.ivs, nil
}
func (f *fakeDirectory) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeDirectory) Resolve(ctx context.Context, ids []string) ([]interviewer.Interviewer, error) {
	return f.ivs, f.resolveErr
}
func (f *fakeDirectory) Watch(ctx context.Context) <-chan []interviewer.Interviewer {
	ch := make(chan []interviewer.Interviewer)
	close(ch)
	return ch
}

type fakeEngine struct {
	calls int
	fn    func(req Request) (Schedule, error)
}

func (f *fakeEngine) Generate(ctx context.Context, req Request) (Schedule, error) {
	f.calls++
	return f.fn(req)
}

type fakeRepo struct {
	saved   []Entry
	batches int
}

func (f *fakeRepo) SaveBatch(ctx context.Context, ownerID, batchID uuid.UUID, entries []Entry) error {
	f.batches++
	f.saved = append(f.saved, entries...)
	return nil
}
func (f *fakeRepo) List(ctx context.Context, limit, offset int) ([]Entry, error) {
	return f.saved, nil
}
func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (Entry, error) {
	return Entry{}, ErrNotFound
}

func wellFormedSchedule(req Request) (Schedule, error) {
	entries := make([]Entry, 0, len(req.Candidates))
	for i, c := range req.Candidates {
		entries = append(entries, Entry{
			ID:             uuid.New(),
			CandidateID:    c.ID,
			CandidateName:  c.Name,
			CandidateEmail: c.Email,
			InterviewerID:  req.Interviewers[0].ID.String(),
			Date:           "2025-09-02",
			Time:           []string{"09:00", "10:15", "11:30"}[i%3],
			EndTime:        []string{"10:00", "11:15", "12:30"}[i%3],
			Duration:       req.Preferences.DurationMinutes,
			Status:         "scheduled",
			MatchingScore:  0.7,
		})
	}
	return Schedule{Entries: entries}, nil
}

func newTestService(engine Engine) (UseCase, *fakeRepo) {
	repo := &fakeRepo{}
	dir := &fakeDirectory{ivs: []interviewer.Interviewer{{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"}}}
	return NewService(dir, engine, "solver", repo, 0, nil), repo
}

func TestGenerateMissingInput(t *testing.T) {
	engine := &fakeEngine{fn: wellFormedSchedule}
	svc, _ := newTestService(engine)

	_, err := svc.Generate(context.Background(), uuid.New(), "u@example.com", GenerateInput{})
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = svc.Generate(context.Background(), uuid.New(), "u@example.com", GenerateInput{CSVData: usecaseRoster})
	assert.ErrorIs(t, err, ErrMissingInput)

	assert.Zero(t, engine.calls)
}

func TestGenerateBlankJobRejectedBeforeEngine(t *testing.T) {
	engine := &fakeEngine{fn: wellFormedSchedule}
	svc, repo := newTestService(engine)

	_, err := svc.Generate(context.Background(), uuid.New(), "u@example.com", GenerateInput{
		CSVData:        usecaseRoster,
		InterviewerIDs: []string{"any"},
		JobDescription: "   ",
	})
	assert.ErrorIs(t, err, ErrBlankJobRequirements)
	assert.Zero(t, engine.calls)
	assert.Zero(t, repo.batches)
}

func TestGenerateNoValidInterviewers(t *testing.T) {
	engine := &fakeEngine{fn: wellFormedSchedule}
	repo := &fakeRepo{}
	svc := NewService(&fakeDirectory{}, engine, "solver", repo, 0, nil)

	_, err := svc.Generate(context.Background(), uuid.New(), "u@example.com", GenerateInput{
		CSVData:        usecaseRoster,
		InterviewerIDs: []string{"ghost-id"},
		JobDescription: "Go engineer",
	})
	assert.ErrorIs(t, err, ErrNoValidInterviewers)
	assert.Zero(t, engine.calls)
}

func TestGenerateHappyPath(t *testing.T) {
	engine := &fakeEngine{fn: wellFormedSchedule}
	svc, repo := newTestService(engine)

	res, err := svc.Generate(context.Background(), uuid.New(), "u@example.com", GenerateInput{
		CSVData:        usecaseRoster,
		InterviewerIDs: []string{"any"},
		JobDescription: "Go engineer",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, engine.calls)
	assert.Equal(t, 1, repo.batches)
	assert.Len(t, repo.saved, 2)
	assert.Equal(t, 2, res.RequestInfo.CandidateCount)
	assert.Equal(t, 1, res.RequestInfo.InterviewerCount)
	assert.Equal(t, "u@example.com", res.RequestInfo.UserID)
	assert.Len(t, res.Schedule.Entries, 2)
}

func TestGenerateEngineTimeout(t *testing.T) {
	engine := &fakeEngine{fn: func(req Request) (Schedule, error) {
		return Schedule{}, context.DeadlineExceeded
	}}
	svc, repo := newTestService(engine)

	_, err := svc.Generate(context.Background(), uuid.New(), "u@example.com", GenerateInput{
		CSVData:        usecaseRoster,
		InterviewerIDs: []string{"any"},
		JobDescription: "Go engineer",
	})
	assert.ErrorIs(t, err, ErrMatchTimeout)
	assert.Zero(t, repo.batches)
}

func TestGenerateIntegrityFailureNotPersisted(t *testing.T) {
	engine := &fakeEngine{fn: func(req Request) (Schedule, error) {
		sched, _ := wellFormedSchedule(req)
		sched.Entries = sched.Entries[:1] // drop a candidate
		return sched, nil
	}}
	svc, repo := newTestService(engine)

	_, err := svc.Generate(context.Background(), uuid.New(), "u@example.com", GenerateInput{
		CSVData:        usecaseRoster,
		InterviewerIDs: []string{"any"},
		JobDescription: "Go engineer",
	})
	assert.ErrorIs(t, err, ErrScheduleIntegrity)
	assert.Zero(t, repo.batches)
}

func TestNewRequestDefaults(t *testing.T) {
	req, err := NewRequest(
		[]candidate.Candidate{{Name: "A", Email: "a@example.com"}},
		[]interviewer.Interviewer{{ID: uuid.New(), Name: "Ada"}},
		"Go engineer", Preferences{})
	require.NoError(t, err)
	assert.Equal(t, 60, req.Preferences.DurationMinutes)
	assert.Equal(t, "UTC", req.Preferences.Timezone)
}
