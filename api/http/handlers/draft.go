package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kartierklass/ai-smart-interview-scheduler/api/http/presenter"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/draft"
)

type DraftHandler struct {
	store *draft.Store
}

func NewDraftHandler(store *draft.Store) *DraftHandler {
	return &DraftHandler{store: store}
}

// Get returns the caller's saved form draft.
// @Summary Load form draft
// @Tags    drafts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} draft.Draft
// @Failure 404 {object} presenter.FailureResponse
// @Router  /drafts [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	d, err := h.store.Load(c.Context(), localString(c, "userId"))
	if err != nil {
		if errors.Is(err, draft.ErrNoDraft) {
			return presenter.Fail(c, http.StatusNotFound, presenter.CategoryInvalidRequest, "no draft saved")
		}
		return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryInternal, "failed to load draft")
	}
	return presenter.JSON(c, http.StatusOK, d)
}

// Put overwrites the caller's form draft.
// @Summary Save form draft
// @Tags    drafts
// @Accept  json
// @Produce json
// @Param   input body draft.Draft true "draft payload"
// @Security BearerAuth
// @Success 200 {object} draft.Draft
// @Failure 400 {object} presenter.FailureResponse
// @Router  /drafts [put]
func (h *DraftHandler) Put(c *fiber.Ctx) error {
	var d draft.Draft
	if err := c.BodyParser(&d); err != nil {
		return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, "invalid JSON payload")
	}
	saved, err := h.store.Save(c.Context(), localString(c, "userId"), d)
	if err != nil {
		return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryInternal, "failed to save draft")
	}
	return presenter.JSON(c, http.StatusOK, saved)
}

// Delete clears the caller's form draft.
// @Summary Clear form draft
// @Tags    drafts
// @Security BearerAuth
// @Success 204
// @Router  /drafts [delete]
func (h *DraftHandler) Delete(c *fiber.Ctx) error {
	if err := h.store.Clear(c.Context(), localString(c, "userId")); err != nil {
		return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryInternal, "failed to clear draft")
	}
	return c.SendStatus(http.StatusNoContent)
}
