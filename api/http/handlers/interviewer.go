package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kartierklass/ai-smart-interview-scheduler/api/http/presenter"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/interviewer"
)

type InterviewerHandler struct {
	useCase interviewer.UseCase
}

func NewInterviewerHandler(useCase interviewer.UseCase) *InterviewerHandler {
	return &InterviewerHandler{useCase: useCase}
}

type addInterviewerRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
}

// Add creates a directory entry.
// @Summary Add interviewer
// @Tags    interviewers
// @Accept  json
// @Produce json
// @Param   input body addInterviewerRequest true "interviewer payload"
// @Security BearerAuth
// @Success 201 {object} interviewer.Interviewer
// @Failure 400 {object} presenter.FailureResponse
// @Router  /interviewers [post]
func (h *InterviewerHandler) Add(c *fiber.Ctx) error {
	var req addInterviewerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, "invalid JSON payload")
	}
	iv, err := h.useCase.Add(c.Context(), req.Name, req.Email, req.Specialization)
	if err != nil {
		switch {
		case errors.Is(err, interviewer.ErrInvalidName),
			errors.Is(err, interviewer.ErrInvalidEmail),
			errors.Is(err, interviewer.ErrUnknownSpecialization):
			return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, err.Error())
		default:
			return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryInternal, "failed to add interviewer")
		}
	}
	return presenter.JSON(c, http.StatusCreated, iv)
}

// List returns the whole directory.
// @Summary List interviewers
// @Tags    interviewers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} interviewer.Interviewer
// @Router  /interviewers [get]
func (h *InterviewerHandler) List(c *fiber.Ctx) error {
	out, err := h.useCase.List(c.Context())
	if err != nil {
		return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryInternal, "failed to list interviewers")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Delete removes a directory entry.
// @Summary Delete interviewer
// @Tags    interviewers
// @Param   id path string true "interviewer id"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} presenter.FailureResponse
// @Router  /interviewers/{id} [delete]
func (h *InterviewerHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, "invalid interviewer id")
	}
	if err := h.useCase.Delete(c.Context(), id); err != nil {
		if errors.Is(err, interviewer.ErrNotFound) {
			return presenter.Fail(c, http.StatusNotFound, presenter.CategoryInvalidRequest, "interviewer not found")
		}
		return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryInternal, "failed to delete interviewer")
	}
	return c.SendStatus(http.StatusNoContent)
}

// Watch streams full directory snapshots as server-sent events.
// @Summary Watch interviewer directory
// @Tags    interviewers
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200
// @Router  /interviewers/watch [get]
func (h *InterviewerHandler) Watch(c *fiber.Ctx) error {
	return streamSSE(c, func(ctx context.Context) (<-chan []interviewer.Interviewer, error) {
		return h.useCase.Watch(ctx), nil
	})
}
