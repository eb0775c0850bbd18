package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/candidate"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/interviewer"
)

// ValidateSchedule confirms the structural integrity of a produced schedule:
// every roster row appears exactly once, no interviewer has two overlapping
// entries, and every score lies in [0,1]. Rows are keyed by the parse-time
// candidate id, so a roster listing the same email twice is still two rows;
// rows built without an id fall back to the lowercased email. A schedule
// failing any check must never be surfaced to the caller.
func ValidateSchedule(candidates []candidate.Candidate, interviewers []interviewer.Interviewer, sched Schedule) error {
	counts := make(map[string]int, len(candidates))
	for _, e := range sched.Entries {
		counts[rowKey(e.CandidateID, e.CandidateEmail)]++
	}
	for _, c := range candidates {
		switch n := counts[rowKey(c.ID, c.Email)]; n {
		case 1:
		case 0:
			return fmt.Errorf("%w: candidate %s has no schedule entry", ErrScheduleIntegrity, c.Email)
		default:
			return fmt.Errorf("%w: candidate %s appears %d times", ErrScheduleIntegrity, c.Email, n)
		}
	}

	for _, e := range sched.Entries {
		if e.MatchingScore < 0 || e.MatchingScore > 1 {
			return fmt.Errorf("%w: matching score %v for %s is outside [0,1]", ErrScheduleIntegrity, e.MatchingScore, e.CandidateEmail)
		}
	}

	if n := CountConflicts(sched.Entries); n > 0 {
		return fmt.Errorf("%w: %d overlapping interviewer slot(s)", ErrScheduleIntegrity, n)
	}
	return nil
}

// rowKey identifies the roster row behind a candidate or entry.
func rowKey(id, email string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return strings.ToLower(strings.TrimSpace(email))
}

type interval struct {
	start time.Time
	end   time.Time
}

// CountConflicts counts pairs of entries for the same interviewer whose time
// intervals overlap. Entries with unparseable times count as conflicts: a
// slot that cannot be placed on the calendar cannot be proven free.
func CountConflicts(entries []Entry) int {
	byInterviewer := make(map[string][]interval)
	conflicts := 0
	for _, e := range entries {
		iv, err := entryInterval(e)
		if err != nil {
			conflicts++
			continue
		}
		byInterviewer[e.InterviewerID] = append(byInterviewer[e.InterviewerID], iv)
	}
	for _, ivs := range byInterviewer {
		for i := 0; i < len(ivs); i++ {
			for j := i + 1; j < len(ivs); j++ {
				if ivs[i].start.Before(ivs[j].end) && ivs[j].start.Before(ivs[i].end) {
					conflicts++
				}
			}
		}
	}
	return conflicts
}

func entryInterval(e Entry) (interval, error) {
	start, err := time.Parse("2006-01-02 15:04", e.Date+" "+e.Time)
	if err != nil {
		return interval{}, err
	}
	end, err := time.Parse("2006-01-02 15:04", e.Date+" "+e.EndTime)
	if err != nil {
		return interval{}, err
	}
	if !end.After(start) {
		end = start.Add(time.Duration(e.Duration) * time.Minute)
	}
	return interval{start: start, end: end}, nil
}
