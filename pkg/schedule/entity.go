package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/candidate"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/interviewer"
)

var (
	ErrNoCandidates         = errors.New("candidate list is empty")
	ErrNoValidInterviewers  = errors.New("no valid interviewers found with provided ids")
	ErrBlankJobRequirements = errors.New("job description is required for candidate-interviewer matching")
	ErrMatchTimeout         = errors.New("matching timed out")
	ErrEngineNotConfigured  = errors.New("matching engine is not configured")
	ErrEngineFailure        = errors.New("matching engine failed")
	ErrScheduleIntegrity    = errors.New("schedule failed integrity validation")
	ErrNotFound             = errors.New("interview not found")
)

// CapacityError reports that the horizon ran out of slots. It names every
// candidate that could not be placed.
type CapacityError struct {
	Unplaceable []string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("interviewer capacity exceeded, unplaceable candidates: %s",
		strings.Join(e.Unplaceable, ", "))
}

// Preferences are the caller-supplied scheduling knobs.
type Preferences struct {
	DurationMinutes int    `json:"duration"`
	Timezone        string `json:"timezone"`
}

// Request is the immutable join of roster, resolved interviewers, job
// requirements and preferences handed to an Engine.
type Request struct {
	Candidates      []candidate.Candidate
	Interviewers    []interviewer.Interviewer
	JobRequirements string
	Preferences     Preferences
}

// NewRequest validates and assembles a Request. Each violation is a distinct
// error so callers can render a specific remediation message.
func NewRequest(candidates []candidate.Candidate, interviewers []interviewer.Interviewer, jobRequirements string, prefs Preferences) (Request, error) {
	if len(candidates) == 0 {
		return Request{}, ErrNoCandidates
	}
	if len(interviewers) == 0 {
		return Request{}, ErrNoValidInterviewers
	}
	if strings.TrimSpace(jobRequirements) == "" {
		return Request{}, ErrBlankJobRequirements
	}
	if prefs.DurationMinutes <= 0 {
		prefs.DurationMinutes = 60
	}
	if strings.TrimSpace(prefs.Timezone) == "" {
		prefs.Timezone = "UTC"
	}
	return Request{
		Candidates:      candidates,
		Interviewers:    interviewers,
		JobRequirements: jobRequirements,
		Preferences:     prefs,
	}, nil
}

// Entry is one scheduled interview: candidate and interviewer snapshots, the
// allotted slot and the per-assignment diagnostics.
type Entry struct {
	ID                 uuid.UUID `json:"id"`
	CandidateID        string    `json:"candidateId"`
	CandidateName      string    `json:"candidateName"`
	CandidateEmail     string    `json:"candidateEmail"`
	InterviewerID      string    `json:"interviewerId"`
	InterviewerName    string    `json:"interviewerName"`
	InterviewerEmail   string    `json:"interviewerEmail"`
	Date               string    `json:"date"`
	Time               string    `json:"time"`
	EndTime            string    `json:"endTime"`
	Duration           int       `json:"duration"`
	Status             string    `json:"status"`
	MeetingRoom        string    `json:"meetingRoom"`
	Notes              string    `json:"notes,omitempty"`
	MatchingScore      float64   `json:"matchingScore"`
	MatchingReason     string    `json:"matchingReason"`
	SkillGaps          []string  `json:"skillGaps"`
	BehavioralQuestion string    `json:"behavioralQuestion"`
	CreatedAt          time.Time `json:"createdAt,omitempty"`
}

type Metadata struct {
	TotalCandidates   int       `json:"totalCandidates"`
	TotalInterviewers int       `json:"totalInterviewers"`
	Algorithm         string    `json:"schedulingAlgorithm"`
	GeneratedAt       time.Time `json:"generatedAt"`
	Timezone          string    `json:"timeZone"`
	Duration          int       `json:"duration"`
}

// WorkloadStat is the per-interviewer utilization summary.
type WorkloadStat struct {
	Name            string  `json:"name"`
	TotalInterviews int     `json:"totalInterviews"`
	AveragePerDay   float64 `json:"averagePerDay"`
	UtilizationRate float64 `json:"utilizationRate"`
}

// Analytics are always computed from the actual assignment, never taken from
// an engine's self-report.
type Analytics struct {
	InterviewerWorkload map[string]WorkloadStat `json:"interviewerWorkload"`
	ScheduleEfficiency  float64                 `json:"scheduleEfficiency"`
	ConflictCount       int                     `json:"conflictCount"`
	OptimizationScore   float64                 `json:"optimizationScore"`
}

// Schedule is the full generation result.
type Schedule struct {
	Metadata        Metadata  `json:"metadata"`
	Entries         []Entry   `json:"schedule"`
	Analytics       Analytics `json:"analytics"`
	Recommendations []string  `json:"recommendations"`
}

// Engine assigns candidates to interviewer time slots and scores the
// assignments. The deterministic solver is the default; the LLM oracle
// implements the same contract.
type Engine interface {
	Generate(ctx context.Context, req Request) (Schedule, error)
}

// NotConfiguredEngine rejects every request. It is installed at startup when
// the selected engine is missing its credentials, so the failure is reported
// per request instead of crashing the process.
type NotConfiguredEngine struct{ Reason string }

func (e NotConfiguredEngine) Generate(ctx context.Context, req Request) (Schedule, error) {
	return Schedule{}, fmt.Errorf("%w: %s", ErrEngineNotConfigured, e.Reason)
}

// Repository persists generated interviews for follow-up screens and note
// threads.
type Repository interface {
	SaveBatch(ctx context.Context, ownerID uuid.UUID, batchID uuid.UUID, entries []Entry) error
	List(ctx context.Context, limit, offset int) ([]Entry, error)
	GetByID(ctx context.Context, id uuid.UUID) (Entry, error)
}
