// Package oracle keeps the original delegation path: the whole schedule is
// produced by a generative model and only validated locally. It implements
// the same Engine contract as the deterministic solver so callers never know
// which one answered.
package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/llm"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/schedule"
)

const systemPrompt = "You are an expert interview scheduler implementing the Saturn Principle algorithm. Always respond with valid JSON only. Do not include markdown formatting, explanations, or any text outside the JSON structure."

// Engine asks a chat model for the full schedule. The model's self-reported
// analytics are discarded; the caller's figures come from the actual
// assignment.
type Engine struct {
	model llm.ChatModel
	now   func() time.Time
}

func New(model llm.ChatModel) *Engine {
	return &Engine{model: model, now: time.Now}
}

type payload struct {
	Success  bool             `json:"success"`
	Schedule []schedule.Entry `json:"schedule"`
}

func (e *Engine) Generate(ctx context.Context, req schedule.Request) (schedule.Schedule, error) {
	raw, err := e.model.Ask(ctx, systemPrompt, masterPrompt(req))
	if err != nil {
		if ctx.Err() != nil {
			return schedule.Schedule{}, ctx.Err()
		}
		return schedule.Schedule{}, fmt.Errorf("%w: oracle call failed: %v", schedule.ErrEngineFailure, err)
	}
	raw = stripFences(raw)

	if err := validateReply(raw); err != nil {
		return schedule.Schedule{}, fmt.Errorf("%w: %v", schedule.ErrEngineFailure, err)
	}
	var p payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return schedule.Schedule{}, fmt.Errorf("%w: oracle returned non-parseable JSON: %v", schedule.ErrEngineFailure, err)
	}
	if !p.Success || len(p.Schedule) == 0 {
		return schedule.Schedule{}, fmt.Errorf("%w: oracle reply has no schedule entries", schedule.ErrEngineFailure)
	}

	// Models occasionally drop the echoed row id; recover it from the email
	// (first row wins, duplicate rows must be echoed to survive validation).
	rowByEmail := make(map[string]string, len(req.Candidates))
	for _, c := range req.Candidates {
		key := strings.ToLower(strings.TrimSpace(c.Email))
		if _, ok := rowByEmail[key]; !ok {
			rowByEmail[key] = c.ID
		}
	}

	entries := p.Schedule
	for i := range entries {
		entries[i].ID = uuid.New()
		if entries[i].CandidateID == "" {
			entries[i].CandidateID = rowByEmail[strings.ToLower(strings.TrimSpace(entries[i].CandidateEmail))]
		}
		if entries[i].Duration == 0 {
			entries[i].Duration = req.Preferences.DurationMinutes
		}
		if entries[i].Status == "" {
			entries[i].Status = "scheduled"
		}
	}

	sched := schedule.Schedule{
		Metadata: schedule.Metadata{
			TotalCandidates:   len(req.Candidates),
			TotalInterviewers: len(req.Interviewers),
			Algorithm:         "saturn-oracle/v2",
			GeneratedAt:       e.now().UTC(),
			Timezone:          req.Preferences.Timezone,
			Duration:          req.Preferences.DurationMinutes,
		},
		Entries: entries,
	}
	// Ten weekdays in the two-week window, six interviews per day cap:
	// the parameters stated to the model, reused to recompute utilization.
	sched.Analytics = schedule.ComputeAnalytics(entries, req.Interviewers, 10, 6)
	sched.Recommendations = []string{"Schedule produced by the generative oracle; verify interviewer availability before sending invitations"}
	return sched, nil
}

func masterPrompt(req schedule.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# AI Interview Scheduler - Saturn Principle\n\n")
	fmt.Fprintf(&b, "Generate an interview schedule that balances interviewer workload, candidate preferences and time zones.\n\n")
	fmt.Fprintf(&b, "## JOB DESCRIPTION\n%s\n\n", req.JobRequirements)

	fmt.Fprintf(&b, "## CANDIDATES (%d total)\n", len(req.Candidates))
	for i, c := range req.Candidates {
		fmt.Fprintf(&b, "%d. %s | id: %s | email: %s | position: %s | experience: %s | skills: %s | preferred date: %s\n",
			i+1, c.Name, orDefault(c.ID, fmt.Sprintf("candidate-%d", i+1)), c.Email,
			orDefault(c.Position, "not specified"), orDefault(c.Experience, "not specified"),
			orDefault(c.Skills, "not specified"), orDefault(c.PreferredDate, "flexible"))
	}

	fmt.Fprintf(&b, "\n## INTERVIEWERS (%d available)\n", len(req.Interviewers))
	for i, iv := range req.Interviewers {
		fmt.Fprintf(&b, "%d. %s | id: %s | email: %s | specialization: %s | availability: 9 AM - 5 PM weekdays\n",
			i+1, iv.Name, iv.ID, iv.Email, orDefault(iv.Specialization, "general"))
	}

	fmt.Fprintf(&b, "\n## PARAMETERS\n")
	fmt.Fprintf(&b, "- interview duration: %d minutes\n", req.Preferences.DurationMinutes)
	fmt.Fprintf(&b, "- time zone: %s\n", req.Preferences.Timezone)
	fmt.Fprintf(&b, "- working hours: 09:00-17:00, Monday-Friday\n")
	fmt.Fprintf(&b, "- buffer between interviews: 15 minutes\n")
	fmt.Fprintf(&b, "- max interviews per interviewer per day: 6\n")
	fmt.Fprintf(&b, "- scheduling window: weekdays in the next 2 weeks\n")

	fmt.Fprintf(&b, "\n## RULES\n")
	fmt.Fprintf(&b, "1. Match each candidate to the interviewer whose specialization best fits the candidate's skills and the job description.\n")
	fmt.Fprintf(&b, "2. Identify up to 3 skills from the job description missing from the candidate's skill list (skillGaps).\n")
	fmt.Fprintf(&b, "3. Generate one behavioral question per candidate based on experience level and role.\n")
	fmt.Fprintf(&b, "4. Distribute interviews evenly; no interviewer may have overlapping interviews.\n")
	fmt.Fprintf(&b, "5. Include every candidate exactly once, echoing the candidate's id as candidateId; honor preferred dates when possible.\n")

	fmt.Fprintf(&b, "\n## OUTPUT\nReturn ONLY a JSON object: {\"success\": true, \"schedule\": [{\"candidateId\", \"candidateName\", \"candidateEmail\", \"interviewerId\", \"interviewerName\", \"interviewerEmail\", \"date\" (YYYY-MM-DD), \"time\" (HH:MM), \"endTime\" (HH:MM), \"duration\", \"status\": \"scheduled\", \"meetingRoom\", \"matchingScore\" (0-1), \"matchingReason\", \"skillGaps\" (1-3 strings), \"behavioralQuestion\"}]}\n")
	return b.String()
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// stripFences removes a surrounding markdown code fence if the model added
// one despite the instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
