package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kartierklass/ai-smart-interview-scheduler/api/http/presenter"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/candidate"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/schedule"
)

type ScheduleHandler struct {
	useCase schedule.UseCase
}

func NewScheduleHandler(useCase schedule.UseCase) *ScheduleHandler {
	return &ScheduleHandler{useCase: useCase}
}

// Generate runs one scheduling batch.
// @Summary Generate interview schedule
// @Description Parses the roster, resolves interviewers and produces a validated schedule.
// @Tags    schedules
// @Accept  json
// @Produce json
// @Param   input body schedule.GenerateInput true "generation payload"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.FailureResponse
// @Failure 500 {object} presenter.FailureResponse
// @Router  /schedules/generate [post]
func (h *ScheduleHandler) Generate(c *fiber.Ctx) error {
	var in schedule.GenerateInput
	if err := c.BodyParser(&in); err != nil {
		return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, "invalid JSON payload")
	}

	ownerIDStr, _ := c.Locals("userId").(string)
	ownerID, _ := uuid.Parse(ownerIDStr)
	userEmail, _ := c.Locals("userEmail").(string)

	result, err := h.useCase.Generate(c.Context(), ownerID, userEmail, in)
	if err != nil {
		return scheduleFailure(c, err)
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success":     true,
		"schedule":    result.Schedule,
		"requestInfo": result.RequestInfo,
	})
}

// scheduleFailure maps generation errors onto the envelope taxonomy. Input
// problems are 400, everything downstream of a well-formed request is 500.
func scheduleFailure(c *fiber.Ctx, err error) error {
	var capErr *schedule.CapacityError
	switch {
	case errors.Is(err, schedule.ErrMissingInput),
		errors.Is(err, schedule.ErrBlankJobRequirements),
		errors.Is(err, candidate.ErrRosterTooShort),
		errors.Is(err, candidate.ErrUnsupportedFormat):
		return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, err.Error())
	case errors.Is(err, candidate.ErrNoValidCandidates), errors.Is(err, schedule.ErrNoCandidates):
		return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryNoValidCandidates, err.Error())
	case errors.Is(err, schedule.ErrNoValidInterviewers):
		return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryNoValidInterviewers, err.Error())
	case errors.As(err, &capErr):
		return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryCapacity, capErr.Error())
	case errors.Is(err, schedule.ErrScheduleIntegrity):
		return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryIntegrity, err.Error())
	case errors.Is(err, schedule.ErrMatchTimeout):
		return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryAIService, err.Error())
	case errors.Is(err, schedule.ErrEngineNotConfigured):
		return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryConfiguration, err.Error())
	case errors.Is(err, schedule.ErrEngineFailure):
		return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryAIService, err.Error())
	default:
		return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryInternal, err.Error())
	}
}
