package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kartierklass/ai-smart-interview-scheduler/api/http/presenter"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/note"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/schedule"
)

type NoteHandler struct {
	useCase note.UseCase
}

func NewNoteHandler(useCase note.UseCase) *NoteHandler {
	return &NoteHandler{useCase: useCase}
}

type addNoteRequest struct {
	Content string `json:"content"`
}

// Add appends a note to an interview's thread. Authorship comes from the
// token, never from the request body.
// @Summary Add interview note
// @Tags    notes
// @Accept  json
// @Produce json
// @Param   id path string true "interview id"
// @Param   input body addNoteRequest true "note payload"
// @Security BearerAuth
// @Success 201 {object} note.Note
// @Failure 400 {object} presenter.FailureResponse
// @Failure 404 {object} presenter.FailureResponse
// @Router  /interviews/{id}/notes [post]
func (h *NoteHandler) Add(c *fiber.Ctx) error {
	interviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, "invalid interview id")
	}
	var req addNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, "invalid JSON payload")
	}
	author := note.Author{
		Name:  localString(c, "userName"),
		Email: localString(c, "userEmail"),
	}
	n, err := h.useCase.Add(c.Context(), interviewID, author, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, note.ErrEmptyContent), errors.Is(err, note.ErrNoAuthor):
			return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, err.Error())
		case errors.Is(err, schedule.ErrNotFound):
			return presenter.Fail(c, http.StatusNotFound, presenter.CategoryInvalidRequest, "interview not found")
		default:
			return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryInternal, "failed to add note")
		}
	}
	return presenter.JSON(c, http.StatusCreated, n)
}

// List returns an interview's note thread, newest first.
// @Summary List interview notes
// @Tags    notes
// @Produce json
// @Param   id path string true "interview id"
// @Security BearerAuth
// @Success 200 {array} note.Note
// @Failure 404 {object} presenter.FailureResponse
// @Router  /interviews/{id}/notes [get]
func (h *NoteHandler) List(c *fiber.Ctx) error {
	interviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, "invalid interview id")
	}
	out, err := h.useCase.List(c.Context(), interviewID)
	if err != nil {
		return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryInternal, "failed to list notes")
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Watch streams full note-thread snapshots as server-sent events.
// @Summary Watch interview notes
// @Tags    notes
// @Produce text/event-stream
// @Param   id path string true "interview id"
// @Security BearerAuth
// @Success 200
// @Failure 404 {object} presenter.FailureResponse
// @Router  /interviews/{id}/notes/watch [get]
func (h *NoteHandler) Watch(c *fiber.Ctx) error {
	interviewID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, "invalid interview id")
	}
	err = streamSSE(c, func(ctx context.Context) (<-chan []note.Note, error) {
		return h.useCase.Watch(ctx, interviewID)
	})
	if err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			return presenter.Fail(c, http.StatusNotFound, presenter.CategoryInvalidRequest, "interview not found")
		}
		return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryInternal, "failed to open note stream")
	}
	return nil
}

func localString(c *fiber.Ctx, key string) string {
	v, _ := c.Locals(key).(string)
	return v
}
