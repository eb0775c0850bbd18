package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartierklass/ai-smart-interview-scheduler/api/http/presenter"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/schedule"
)

type fakeScheduleUseCase struct {
	result schedule.Result
	err    error
}

func (f *fakeScheduleUseCase) Generate(ctx context.Context, ownerID uuid.UUID, userEmail string, in schedule.GenerateInput) (schedule.Result, error) {
	return f.result, f.err
}

func (f *fakeScheduleUseCase) ListInterviews(ctx context.Context, limit, offset int) ([]schedule.Entry, error) {
	return nil, nil
}

func (f *fakeScheduleUseCase) GetInterview(ctx context.Context, id uuid.UUID) (schedule.Entry, error) {
	return schedule.Entry{}, schedule.ErrNotFound
}

func generateApp(uc schedule.UseCase) *fiber.App {
	app := fiber.New()
	h := NewScheduleHandler(uc)
	app.Post("/schedules/generate", func(c *fiber.Ctx) error {
		c.Locals("userId", uuid.NewString())
		c.Locals("userEmail", "u@example.com")
		return h.Generate(c)
	})
	return app
}

func postGenerate(t *testing.T, app *fiber.App, body string) (int, presenter.FailureResponse) {
	t.Helper()
	req := httptest.NewRequest("POST", "/schedules/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var failure presenter.FailureResponse
	_ = json.Unmarshal(data, &failure)
	return resp.StatusCode, failure
}

func TestGenerateEnvelopeMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"missing input", schedule.ErrMissingInput, 400, presenter.CategoryInvalidRequest},
		{"blank job", schedule.ErrBlankJobRequirements, 400, presenter.CategoryInvalidRequest},
		{"no candidates", schedule.ErrNoCandidates, 400, presenter.CategoryNoValidCandidates},
		{"no interviewers", schedule.ErrNoValidInterviewers, 400, presenter.CategoryNoValidInterviewers},
		{"capacity", &schedule.CapacityError{Unplaceable: []string{"Alice"}}, 500, presenter.CategoryCapacity},
		{"integrity", schedule.ErrScheduleIntegrity, 500, presenter.CategoryIntegrity},
		{"timeout", schedule.ErrMatchTimeout, 500, presenter.CategoryAIService},
		{"not configured", schedule.ErrEngineNotConfigured, 500, presenter.CategoryConfiguration},
		{"engine failure", schedule.ErrEngineFailure, 500, presenter.CategoryAIService},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := generateApp(&fakeScheduleUseCase{err: tc.err})
			status, failure := postGenerate(t, app, `{"csvData":"x","interviewerIds":["a"],"jobDescription":"Go"}`)
			assert.Equal(t, tc.wantStatus, status)
			assert.False(t, failure.Success)
			assert.Equal(t, tc.wantError, failure.Error)
			assert.NotEmpty(t, failure.Details)
		})
	}
}

func TestGenerateSuccessEnvelope(t *testing.T) {
	uc := &fakeScheduleUseCase{result: schedule.Result{
		Schedule: schedule.Schedule{Entries: []schedule.Entry{{CandidateEmail: "a@example.com"}}},
		RequestInfo: schedule.RequestInfo{
			CandidateCount:   1,
			InterviewerCount: 1,
			UserID:           "u@example.com",
		},
	}}
	app := generateApp(uc)

	req := httptest.NewRequest("POST", "/schedules/generate", strings.NewReader(`{"csvData":"x","interviewerIds":["a"],"jobDescription":"Go"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	var out struct {
		Success     bool                 `json:"success"`
		Schedule    schedule.Schedule    `json:"schedule"`
		RequestInfo schedule.RequestInfo `json:"requestInfo"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.Len(t, out.Schedule.Entries, 1)
	assert.Equal(t, "u@example.com", out.RequestInfo.UserID)
}

func TestGenerateRejectsBadJSON(t *testing.T) {
	app := generateApp(&fakeScheduleUseCase{})
	status, failure := postGenerate(t, app, "{not json")
	assert.Equal(t, 400, status)
	assert.Equal(t, presenter.CategoryInvalidRequest, failure.Error)
}
