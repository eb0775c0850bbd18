package schedule

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/candidate"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/interviewer"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/nlp"
)

// SolverConfig holds the calendar model of the deterministic engine.
type SolverConfig struct {
	WorkStartHour int
	WorkEndHour   int
	BufferMinutes int
	MaxPerDay     int
	HorizonDays   int
	MeetingRooms  int
	Now           func() time.Time
}

// Solver is the deterministic assignment engine: greedy matching ordered by
// descending compatibility with a least-loaded tie-break, slot allocation on
// a weekday working-hours grid. No interviewer slot is ever double-booked by
// construction.
type Solver struct {
	cfg SolverConfig
}

func NewSolver(cfg SolverConfig) *Solver {
	if cfg.WorkStartHour == 0 {
		cfg.WorkStartHour = 9
	}
	if cfg.WorkEndHour == 0 {
		cfg.WorkEndHour = 17
	}
	if cfg.BufferMinutes == 0 {
		cfg.BufferMinutes = 15
	}
	if cfg.MaxPerDay == 0 {
		cfg.MaxPerDay = 6
	}
	if cfg.HorizonDays == 0 {
		cfg.HorizonDays = 14
	}
	if cfg.MeetingRooms == 0 {
		cfg.MeetingRooms = 3
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Solver{cfg: cfg}
}

type scoredPair struct {
	ivIdx   int
	score   float64
	matched []string
}

func (s *Solver) Generate(ctx context.Context, req Request) (Schedule, error) {
	loc, err := time.LoadLocation(req.Preferences.Timezone)
	if err != nil {
		loc = time.UTC
	}
	duration := req.Preferences.DurationMinutes

	days := s.horizonDays(loc)
	capPerDay := s.capacityPerDay(duration)
	if capPerDay == 0 {
		return Schedule{}, &CapacityError{Unplaceable: candidateNames(req.Candidates)}
	}

	jobSkills := nlp.ExtractSkills(req.JobRequirements)

	// Score every (candidate, interviewer) pair once.
	pairScores := make([][]scoredPair, len(req.Candidates))
	for ci, c := range req.Candidates {
		candText := nlp.NormalizeText(c.Skills)
		pairs := make([]scoredPair, 0, len(req.Interviewers))
		for ii, iv := range req.Interviewers {
			score, matched := compatibility(candText, jobSkills, iv)
			pairs = append(pairs, scoredPair{ivIdx: ii, score: score, matched: matched})
		}
		pairScores[ci] = pairs
	}

	// Candidates with the strongest best match get placed first.
	order := make([]int, len(req.Candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return bestScore(pairScores[order[a]]) > bestScore(pairScores[order[b]])
	})

	load := make([]int, len(req.Interviewers))
	used := make([]map[string]int, len(req.Interviewers)) // day -> filled slots
	for i := range used {
		used[i] = make(map[string]int)
	}

	var entries []Entry
	var unplaceable []string

	for _, ci := range order {
		select {
		case <-ctx.Done():
			return Schedule{}, ctx.Err()
		default:
		}
		c := req.Candidates[ci]

		ranked := append([]scoredPair(nil), pairScores[ci]...)
		sort.SliceStable(ranked, func(a, b int) bool {
			if ranked[a].score != ranked[b].score {
				return ranked[a].score > ranked[b].score
			}
			if load[ranked[a].ivIdx] != load[ranked[b].ivIdx] {
				return load[ranked[a].ivIdx] < load[ranked[b].ivIdx]
			}
			return req.Interviewers[ranked[a].ivIdx].Name < req.Interviewers[ranked[b].ivIdx].Name
		})

		candidateDays := days
		if preferred, ok := parsePreferredDate(c.PreferredDate, loc, days); ok {
			// preferred day first, then the regular horizon as fallback
			candidateDays = append([]time.Time{preferred}, days...)
		}

		entry, placed := s.place(c, ranked, candidateDays, capPerDay, duration, req.Interviewers, used, load, jobSkills)
		if !placed {
			unplaceable = append(unplaceable, c.Name)
			continue
		}
		entry.MeetingRoom = fmt.Sprintf("Virtual Room %d", len(entries)%s.cfg.MeetingRooms+1)
		entries = append(entries, entry)
	}

	if len(unplaceable) > 0 {
		return Schedule{}, &CapacityError{Unplaceable: unplaceable}
	}

	sched := Schedule{
		Metadata: Metadata{
			TotalCandidates:   len(req.Candidates),
			TotalInterviewers: len(req.Interviewers),
			Algorithm:         "saturn-solver/v1",
			GeneratedAt:       s.cfg.Now().UTC(),
			Timezone:          req.Preferences.Timezone,
			Duration:          duration,
		},
		Entries: entries,
	}
	sched.Analytics = ComputeAnalytics(sched.Entries, req.Interviewers, len(days), capPerDay)
	sched.Recommendations = recommendations(sched.Analytics, s.cfg.HorizonDays)
	return sched, nil
}

func (s *Solver) place(c candidate.Candidate, ranked []scoredPair, days []time.Time, capPerDay, duration int,
	interviewers []interviewer.Interviewer, used []map[string]int, load []int, jobSkills []string) (Entry, bool) {
	step := duration + s.cfg.BufferMinutes
	for _, day := range days {
		dayKey := day.Format("2006-01-02")
		for _, p := range ranked {
			slot := used[p.ivIdx][dayKey]
			if slot >= capPerDay {
				continue
			}
			used[p.ivIdx][dayKey]++
			load[p.ivIdx]++

			iv := interviewers[p.ivIdx]
			start := time.Date(day.Year(), day.Month(), day.Day(), s.cfg.WorkStartHour, 0, 0, 0, day.Location()).
				Add(time.Duration(slot*step) * time.Minute)
			end := start.Add(time.Duration(duration) * time.Minute)

			return Entry{
				ID:                 uuid.New(),
				CandidateID:        c.ID,
				CandidateName:      c.Name,
				CandidateEmail:     c.Email,
				InterviewerID:      iv.ID.String(),
				InterviewerName:    iv.Name,
				InterviewerEmail:   iv.Email,
				Date:               dayKey,
				Time:               start.Format("15:04"),
				EndTime:            end.Format("15:04"),
				Duration:           duration,
				Status:             "scheduled",
				MatchingScore:      p.score,
				MatchingReason:     matchingReason(p, iv),
				SkillGaps:          skillGaps(c, jobSkills),
				BehavioralQuestion: behavioralQuestion(c),
			}, true
		}
	}
	return Entry{}, false
}

// horizonDays returns the weekdays of the scheduling window, starting the
// day after now.
func (s *Solver) horizonDays(loc *time.Location) []time.Time {
	now := s.cfg.Now().In(loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	var days []time.Time
	for i := 1; i <= s.cfg.HorizonDays; i++ {
		d := start.AddDate(0, 0, i)
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		days = append(days, d)
	}
	return days
}

// capacityPerDay is the number of grid slots fitting the working window,
// bounded by the daily cap.
func (s *Solver) capacityPerDay(duration int) int {
	window := (s.cfg.WorkEndHour - s.cfg.WorkStartHour) * 60
	if duration <= 0 || duration > window {
		return 0
	}
	step := duration + s.cfg.BufferMinutes
	slots := (window-duration)/step + 1
	if slots > s.cfg.MaxPerDay {
		slots = s.cfg.MaxPerDay
	}
	return slots
}

// compatibility scores a candidate against one interviewer: token overlap
// between the candidate's skills and the union of job-requirement skills and
// the interviewer's specialization expansion.
func compatibility(candText string, jobSkills []string, iv interviewer.Interviewer) (float64, []string) {
	targets := unionSkills(jobSkills, nlp.SpecializationSkills(iv.Specialization))
	if len(targets) == 0 {
		return 0.5, nil
	}
	var matched []string
	for _, t := range targets {
		if nlp.HasSkill(candText, t) {
			matched = append(matched, t)
		}
	}
	return float64(len(matched)) / float64(len(targets)), matched
}

func unionSkills(a, b []string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, s := range append(append([]string(nil), a...), b...) {
		n := nlp.NormalizeText(s)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// skillGaps lists up to three job-requirement skills absent from the
// candidate's skill list.
func skillGaps(c candidate.Candidate, jobSkills []string) []string {
	candText := nlp.NormalizeText(c.Skills)
	gaps := []string{}
	for _, skill := range jobSkills {
		if nlp.HasSkill(candText, skill) {
			continue
		}
		gaps = append(gaps, skill)
		if len(gaps) == 3 {
			break
		}
	}
	return gaps
}

func matchingReason(p scoredPair, iv interviewer.Interviewer) string {
	spec := iv.Specialization
	if spec == "" {
		spec = "general"
	}
	if len(p.matched) == 0 {
		return fmt.Sprintf("No direct skill overlap; assigned to %s interviewer %s to balance load", spec, iv.Name)
	}
	return fmt.Sprintf("Candidate skills %s align with %s specialization and job requirements",
		strings.Join(p.matched, ", "), spec)
}

func bestScore(pairs []scoredPair) float64 {
	best := 0.0
	for _, p := range pairs {
		if p.score > best {
			best = p.score
		}
	}
	return best
}

// parsePreferredDate accepts a few common spellings and returns the date only
// when it falls on a weekday inside the horizon.
func parsePreferredDate(raw string, loc *time.Location, horizon []time.Time) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(horizon) == 0 {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", "01/02/2006", "Jan 2, 2006", "January 2, 2006"} {
		d, err := time.ParseInLocation(layout, raw, loc)
		if err != nil {
			continue
		}
		for _, h := range horizon {
			if h.Year() == d.Year() && h.YearDay() == d.YearDay() {
				return h, true
			}
		}
		return time.Time{}, false
	}
	return time.Time{}, false
}

func ComputeAnalytics(entries []Entry, interviewers []interviewer.Interviewer, horizonDays, capPerDay int) Analytics {
	workload := make(map[string]WorkloadStat, len(interviewers))
	perDay := make(map[string]map[string]struct{})
	totals := make(map[string]int)
	var scoreSum float64

	for _, e := range entries {
		totals[e.InterviewerID]++
		if perDay[e.InterviewerID] == nil {
			perDay[e.InterviewerID] = make(map[string]struct{})
		}
		perDay[e.InterviewerID][e.Date] = struct{}{}
		scoreSum += e.MatchingScore
	}
	for _, iv := range interviewers {
		id := iv.ID.String()
		total := totals[id]
		stat := WorkloadStat{Name: iv.Name, TotalInterviews: total}
		if days := len(perDay[id]); days > 0 {
			stat.AveragePerDay = round2(float64(total) / float64(days))
		}
		if horizonDays > 0 && capPerDay > 0 {
			stat.UtilizationRate = round2(float64(total) / float64(horizonDays*capPerDay))
		}
		workload[id] = stat
	}

	meanScore := 0.0
	if len(entries) > 0 {
		meanScore = scoreSum / float64(len(entries))
	}
	return Analytics{
		InterviewerWorkload: workload,
		ScheduleEfficiency:  round2(meanScore),
		ConflictCount:       CountConflicts(entries),
		OptimizationScore:   math.Round(meanScore*1000) / 10,
	}
}

func recommendations(a Analytics, horizonDays int) []string {
	var out []string
	var maxUtil float64
	idle := 0
	for _, w := range a.InterviewerWorkload {
		if w.UtilizationRate > maxUtil {
			maxUtil = w.UtilizationRate
		}
		if w.TotalInterviews == 0 {
			idle++
		}
	}
	if maxUtil > 0.8 {
		out = append(out, "Interviewer utilization is high; consider adding interviewers or extending the scheduling horizon")
	}
	if idle > 0 {
		out = append(out, fmt.Sprintf("%d interviewer(s) received no interviews; review specialization coverage against the job requirements", idle))
	}
	if len(out) == 0 {
		out = append(out, fmt.Sprintf("All candidates scheduled without conflicts within the %d-day horizon", horizonDays))
	}
	return out
}

func candidateNames(cs []candidate.Candidate) []string {
	names := make([]string, 0, len(cs))
	for _, c := range cs {
		names = append(names, c.Name)
	}
	return names
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
