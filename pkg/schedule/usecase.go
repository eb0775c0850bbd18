package schedule

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/candidate"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/interviewer"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/observability"
)

// ErrMissingInput is returned when roster text or interviewer ids are absent
// from a generation request.
var ErrMissingInput = errors.New("csv data and interviewer ids are required")

// GenerateInput is the wire shape of one batch submission.
type GenerateInput struct {
	CSVData        string      `json:"csvData"`
	InterviewerIDs []string    `json:"interviewerIds"`
	JobDescription string      `json:"jobDescription"`
	Preferences    Preferences `json:"preferences"`
}

// RequestInfo echoes what was processed, for the caller's audit trail.
type RequestInfo struct {
	CandidateCount   int       `json:"candidateCount"`
	InterviewerCount int       `json:"interviewerCount"`
	ProcessedAt      time.Time `json:"processedAt"`
	UserID           string    `json:"userId"`
}

// Result is the success payload of one generation.
type Result struct {
	Schedule    Schedule    `json:"schedule"`
	RequestInfo RequestInfo `json:"requestInfo"`
}

// UseCase covers schedule generation and reads of persisted interviews.
type UseCase interface {
	Generate(ctx context.Context, ownerID uuid.UUID, userEmail string, in GenerateInput) (Result, error)
	ListInterviews(ctx context.Context, limit, offset int) ([]Entry, error)
	GetInterview(ctx context.Context, id uuid.UUID) (Entry, error)
}

type service struct {
	directory    interviewer.UseCase
	engine       Engine
	engineName   string
	repo         Repository
	matchTimeout time.Duration
	log          *zap.Logger
}

func NewService(directory interviewer.UseCase, engine Engine, engineName string, repo Repository, matchTimeout time.Duration, log *zap.Logger) UseCase {
	if matchTimeout <= 0 {
		matchTimeout = 45 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		directory:    directory,
		engine:       engine,
		engineName:   engineName,
		repo:         repo,
		matchTimeout: matchTimeout,
		log:          log,
	}
}

// Generate runs one batch submission end to end: parse roster, resolve
// interviewers, build the request, run the engine under a deadline, validate
// the result structurally and persist the entries. A single attempt; the
// caller resubmits manually on failure.
func (s *service) Generate(ctx context.Context, ownerID uuid.UUID, userEmail string, in GenerateInput) (Result, error) {
	if strings.TrimSpace(in.CSVData) == "" || len(in.InterviewerIDs) == 0 {
		return Result{}, ErrMissingInput
	}
	if strings.TrimSpace(in.JobDescription) == "" {
		return Result{}, ErrBlankJobRequirements
	}

	candidates, err := candidate.ParseRoster(in.CSVData)
	if err != nil {
		return Result{}, err
	}

	interviewers, err := s.directory.Resolve(ctx, in.InterviewerIDs)
	if err != nil {
		return Result{}, err
	}
	if len(interviewers) == 0 {
		return Result{}, ErrNoValidInterviewers
	}

	req, err := NewRequest(candidates, interviewers, in.JobDescription, in.Preferences)
	if err != nil {
		return Result{}, err
	}

	engineCtx, cancel := context.WithTimeout(ctx, s.matchTimeout)
	defer cancel()

	started := time.Now()
	sched, err := s.engine.Generate(engineCtx, req)
	observability.ObserveGeneration(s.engineName, started, err)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Result{}, ErrMatchTimeout
		}
		return Result{}, err
	}

	if err := ValidateSchedule(candidates, interviewers, sched); err != nil {
		s.log.Error("generated schedule rejected by validator",
			zap.String("engine", s.engineName), zap.Error(err))
		return Result{}, err
	}

	batchID := uuid.New()
	if err := s.repo.SaveBatch(ctx, ownerID, batchID, sched.Entries); err != nil {
		return Result{}, err
	}

	s.log.Info("schedule generated",
		zap.String("engine", s.engineName),
		zap.Int("candidates", len(candidates)),
		zap.Int("interviewers", len(interviewers)),
		zap.Duration("took", time.Since(started)),
	)

	return Result{
		Schedule: sched,
		RequestInfo: RequestInfo{
			CandidateCount:   len(candidates),
			InterviewerCount: len(interviewers),
			ProcessedAt:      time.Now().UTC(),
			UserID:           userEmail,
		},
	}, nil
}

func (s *service) ListInterviews(ctx context.Context, limit, offset int) ([]Entry, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) GetInterview(ctx context.Context, id uuid.UUID) (Entry, error) {
	return s.repo.GetByID(ctx, id)
}
