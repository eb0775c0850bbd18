package email

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cannedModel struct {
	reply string
	err   error
	asked int
}

func (m *cannedModel) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.asked++
	return m.reply, m.err
}

type recordingMailer struct {
	to, subject, body string
	sent              int
}

func (m *recordingMailer) Send(ctx context.Context, to, subject, body string) error {
	m.sent++
	m.to, m.subject, m.body = to, subject, body
	return nil
}

func offerRequest() DraftRequest {
	return DraftRequest{
		CandidateName:   "Alice",
		JobRole:         "Backend Engineer",
		InterviewerName: "Ada",
		EmailType:       TypeOffer,
	}
}

func TestDraftValidation(t *testing.T) {
	model := &cannedModel{}
	svc := NewService(model, nil)

	_, err := svc.Draft(context.Background(), DraftRequest{})
	assert.ErrorIs(t, err, ErrMissingFields)

	req := offerRequest()
	req.EmailType = "reminder"
	_, err = svc.Draft(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidType)

	assert.Zero(t, model.asked)
}

func TestDraftOffer(t *testing.T) {
	model := &cannedModel{reply: `{"subject": "Offer: Backend Engineer", "body": "Dear Alice, ..."}`}
	svc := NewService(model, nil)

	d, err := svc.Draft(context.Background(), offerRequest())
	require.NoError(t, err)
	assert.Equal(t, "Offer: Backend Engineer", d.Subject)
	assert.Equal(t, "Dear Alice, ...", d.Body)
	assert.Equal(t, TypeOffer, d.Type)
	assert.False(t, d.GeneratedAt.IsZero())
}

func TestDraftTolerantOfFences(t *testing.T) {
	model := &cannedModel{reply: "```json\n{\"subject\": \"s\", \"body\": \"b\"}\n```"}
	svc := NewService(model, nil)

	d, err := svc.Draft(context.Background(), offerRequest())
	require.NoError(t, err)
	assert.Equal(t, "s", d.Subject)
}

func TestDraftBadReply(t *testing.T) {
	svc := NewService(&cannedModel{reply: `{"subject": "", "body": ""}`}, nil)
	_, err := svc.Draft(context.Background(), offerRequest())
	assert.ErrorIs(t, err, ErrBadReply)

	svc = NewService(&cannedModel{reply: "sure, here you go"}, nil)
	_, err = svc.Draft(context.Background(), offerRequest())
	assert.Error(t, err)
}

func TestDraftModelFailure(t *testing.T) {
	svc := NewService(&cannedModel{err: errors.New("upstream 500")}, nil)
	_, err := svc.Draft(context.Background(), offerRequest())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingFields)
}

func TestDraftWithoutModel(t *testing.T) {
	svc := NewService(nil, nil)
	_, err := svc.Draft(context.Background(), offerRequest())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSendWithoutMailer(t *testing.T) {
	svc := NewService(&cannedModel{}, nil)
	err := svc.Send(context.Background(), "alice@example.com", Draft{Subject: "s", Body: "b"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSend(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewService(&cannedModel{}, mailer)

	err := svc.Send(context.Background(), "alice@example.com", Draft{Subject: "s", Body: "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, "alice@example.com", mailer.to)

	err = svc.Send(context.Background(), "  ", Draft{Subject: "s", Body: "b"})
	assert.ErrorIs(t, err, ErrMissingFields)
}
