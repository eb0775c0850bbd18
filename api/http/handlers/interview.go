package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kartierklass/ai-smart-interview-scheduler/api/http/presenter"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/schedule"
)

type InterviewHandler struct {
	useCase schedule.UseCase
}

func NewInterviewHandler(useCase schedule.UseCase) *InterviewHandler {
	return &InterviewHandler{useCase: useCase}
}

// List returns persisted interviews, newest first.
// @Summary List interviews
// @Tags    interviews
// @Produce json
// @Param   limit  query int false "page size (default 50, max 200)"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} schedule.Entry
// @Router  /interviews [get]
func (h *InterviewHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	out, err := h.useCase.ListInterviews(c.Context(), limit, offset)
	if err != nil {
		return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryInternal, "failed to list interviews")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Get returns one persisted interview.
// @Summary Get interview
// @Tags    interviews
// @Produce json
// @Param   id path string true "interview id"
// @Security BearerAuth
// @Success 200 {object} schedule.Entry
// @Failure 404 {object} presenter.FailureResponse
// @Router  /interviews/{id} [get]
func (h *InterviewHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, "invalid interview id")
	}
	entry, err := h.useCase.GetInterview(c.Context(), id)
	if err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			return presenter.Fail(c, http.StatusNotFound, presenter.CategoryInvalidRequest, "interview not found")
		}
		return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryInternal, "failed to load interview")
	}
	return presenter.JSON(c, http.StatusOK, entry)
}
