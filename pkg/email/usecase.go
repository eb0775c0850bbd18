package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/llm"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/observability"
)

var (
	ErrMissingFields = errors.New("missing required fields: candidateName, jobRole, interviewerName, emailType")
	ErrInvalidType   = errors.New(`emailType must be either "offer" or "rejection"`)
	ErrNotConfigured = errors.New("email delivery is not configured")
	ErrBadReply      = errors.New("model reply is missing subject or body")
)

const (
	TypeOffer     = "offer"
	TypeRejection = "rejection"
)

// DraftRequest is one follow-up email request.
type DraftRequest struct {
	CandidateName   string `json:"candidateName"`
	JobRole         string `json:"jobRole"`
	InterviewerName string `json:"interviewerName"`
	EmailType       string `json:"emailType"`
	InterviewDate   string `json:"interviewDate,omitempty"`
	InterviewTime   string `json:"interviewTime,omitempty"`
}

// Draft is a generated subject/body pair, ready to send.
type Draft struct {
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	Type        string    `json:"type"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Mailer delivers a finished draft.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// UseCase generates and optionally delivers follow-up emails.
type UseCase interface {
	Draft(ctx context.Context, req DraftRequest) (Draft, error)
	Send(ctx context.Context, to string, d Draft) error
}

type service struct {
	model  llm.ChatModel
	mailer Mailer // nil when delivery is not configured
}

func NewService(model llm.ChatModel, mailer Mailer) UseCase {
	return &service{model: model, mailer: mailer}
}

func (s *service) Draft(ctx context.Context, req DraftRequest) (Draft, error) {
	if strings.TrimSpace(req.CandidateName) == "" ||
		strings.TrimSpace(req.JobRole) == "" ||
		strings.TrimSpace(req.InterviewerName) == "" ||
		strings.TrimSpace(req.EmailType) == "" {
		return Draft{}, ErrMissingFields
	}
	if req.EmailType != TypeOffer && req.EmailType != TypeRejection {
		return Draft{}, ErrInvalidType
	}
	if s.model == nil {
		return Draft{}, ErrNotConfigured
	}

	raw, err := s.model.Ask(ctx, "You are an HR assistant writing follow-up emails. Return the result strictly as JSON without explanations.", draftPrompt(req))
	if err != nil {
		return Draft{}, fmt.Errorf("email generation failed: %w", err)
	}

	var out struct {
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := json.Unmarshal([]byte(stripFences(raw)), &out); err != nil {
		return Draft{}, fmt.Errorf("model returned non-parseable JSON: %w", err)
	}
	if out.Subject == "" || out.Body == "" {
		return Draft{}, ErrBadReply
	}
	observability.CountEmailDraft(req.EmailType)
	return Draft{
		Subject:     out.Subject,
		Body:        out.Body,
		Type:        req.EmailType,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func (s *service) Send(ctx context.Context, to string, d Draft) error {
	if s.mailer == nil {
		return ErrNotConfigured
	}
	if strings.TrimSpace(to) == "" || d.Subject == "" || d.Body == "" {
		return ErrMissingFields
	}
	return s.mailer.Send(ctx, to, d.Subject, d.Body)
}

func draftPrompt(req DraftRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a professional %s email for a job interview follow-up.\n\n", req.EmailType)
	fmt.Fprintf(&b, "CONTEXT:\n")
	fmt.Fprintf(&b, "- Candidate Name: %s\n", req.CandidateName)
	fmt.Fprintf(&b, "- Job Role: %s\n", req.JobRole)
	fmt.Fprintf(&b, "- Interviewer: %s\n", req.InterviewerName)
	fmt.Fprintf(&b, "- Interview Date: %s\n", orDefault(req.InterviewDate, "Recent"))
	fmt.Fprintf(&b, "- Interview Time: %s\n\n", orDefault(req.InterviewTime, "N/A"))

	if req.EmailType == TypeOffer {
		b.WriteString("REQUIREMENTS: congratulate the candidate on the successful interview, formally offer the position, " +
			"mention positive feedback from the interviewer, outline next steps (HR contact, paperwork, start date), " +
			"give a one-week response window and contact details. TONE: warm, professional, congratulatory.\n\n")
	} else {
		b.WriteString("REQUIREMENTS: thank the candidate for their time, acknowledge their qualifications, " +
			"politely inform them they will not be moving forward, encourage future applications and wish them well. " +
			"TONE: respectful, empathetic, concise.\n\n")
	}
	b.WriteString(`Return ONLY JSON: {"subject": "...", "body": "..."}. The email must be complete and ready to send.`)
	return b.String()
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
