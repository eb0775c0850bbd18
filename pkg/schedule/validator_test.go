package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/candidate"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/interviewer"
)

func validEntries() []Entry {
	return []Entry{
		{CandidateEmail: "a@example.com", InterviewerID: "iv-1", Date: "2025-09-02", Time: "09:00", EndTime: "10:00", MatchingScore: 0.8},
		{CandidateEmail: "b@example.com", InterviewerID: "iv-1", Date: "2025-09-02", Time: "10:15", EndTime: "11:15", MatchingScore: 0.6},
	}
}

func validatorCandidates() []candidate.Candidate {
	return []candidate.Candidate{
		{Name: "A", Email: "a@example.com"},
		{Name: "B", Email: "b@example.com"},
	}
}

func TestValidateScheduleAccepts(t *testing.T) {
	err := ValidateSchedule(validatorCandidates(), []interviewer.Interviewer{}, Schedule{Entries: validEntries()})
	assert.NoError(t, err)
}

func TestValidateScheduleMissingCandidate(t *testing.T) {
	entries := validEntries()[:1]
	err := ValidateSchedule(validatorCandidates(), nil, Schedule{Entries: entries})
	assert.ErrorIs(t, err, ErrScheduleIntegrity)
}

func TestValidateScheduleDuplicateCandidate(t *testing.T) {
	entries := validEntries()
	entries[1].CandidateEmail = "A@Example.com" // duplicate of the first, case-insensitive
	err := ValidateSchedule(validatorCandidates(), nil, Schedule{Entries: entries})
	assert.ErrorIs(t, err, ErrScheduleIntegrity)
}

func TestValidateScheduleDuplicateEmailDistinctRows(t *testing.T) {
	cands := []candidate.Candidate{
		{ID: "candidate-1", Name: "Jane Doe", Email: "jane@example.com"},
		{ID: "candidate-2", Name: "Jane Doe (referral)", Email: "jane@example.com"},
	}
	entries := validEntries()
	entries[0].CandidateID = "candidate-1"
	entries[0].CandidateEmail = "jane@example.com"
	entries[1].CandidateID = "candidate-2"
	entries[1].CandidateEmail = "jane@example.com"

	err := ValidateSchedule(cands, nil, Schedule{Entries: entries})
	assert.NoError(t, err)
}

func TestValidateScheduleSameRowScheduledTwice(t *testing.T) {
	cands := []candidate.Candidate{
		{ID: "candidate-1", Name: "Jane Doe", Email: "jane@example.com"},
		{ID: "candidate-2", Name: "Jane Doe (referral)", Email: "jane@example.com"},
	}
	entries := validEntries()
	entries[0].CandidateID = "candidate-1"
	entries[1].CandidateID = "candidate-1" // second row never placed

	err := ValidateSchedule(cands, nil, Schedule{Entries: entries})
	assert.ErrorIs(t, err, ErrScheduleIntegrity)
}

func TestValidateScheduleScoreOutOfRange(t *testing.T) {
	entries := validEntries()
	entries[0].MatchingScore = 1.3
	err := ValidateSchedule(validatorCandidates(), nil, Schedule{Entries: entries})
	assert.ErrorIs(t, err, ErrScheduleIntegrity)
}

func TestValidateScheduleDoubleBooking(t *testing.T) {
	entries := validEntries()
	entries[1].Time = "09:30" // overlaps the first entry on the same interviewer
	entries[1].EndTime = "10:30"
	err := ValidateSchedule(validatorCandidates(), nil, Schedule{Entries: entries})
	assert.ErrorIs(t, err, ErrScheduleIntegrity)
}

func TestCountConflicts(t *testing.T) {
	assert.Zero(t, CountConflicts(validEntries()))

	overlapping := []Entry{
		{InterviewerID: "iv-1", Date: "2025-09-02", Time: "09:00", EndTime: "10:00"},
		{InterviewerID: "iv-1", Date: "2025-09-02", Time: "09:30", EndTime: "10:30"},
	}
	assert.Equal(t, 1, CountConflicts(overlapping))

	// same slot, different interviewers: no conflict
	parallel := []Entry{
		{InterviewerID: "iv-1", Date: "2025-09-02", Time: "09:00", EndTime: "10:00"},
		{InterviewerID: "iv-2", Date: "2025-09-02", Time: "09:00", EndTime: "10:00"},
	}
	assert.Zero(t, CountConflicts(parallel))
}

func TestCountConflictsUnparseableTimes(t *testing.T) {
	broken := []Entry{{InterviewerID: "iv-1", Date: "tomorrow", Time: "morning", EndTime: "noon"}}
	assert.Equal(t, 1, CountConflicts(broken))
}
