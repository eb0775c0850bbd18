package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kartierklass/ai-smart-interview-scheduler/api/http/presenter"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/email"
)

type EmailHandler struct {
	useCase email.UseCase
}

func NewEmailHandler(useCase email.UseCase) *EmailHandler {
	return &EmailHandler{useCase: useCase}
}

// Draft generates an offer or rejection email.
// @Summary Draft follow-up email
// @Tags    emails
// @Accept  json
// @Produce json
// @Param   input body email.DraftRequest true "draft payload"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.FailureResponse
// @Failure 500 {object} presenter.FailureResponse
// @Router  /emails/draft [post]
func (h *EmailHandler) Draft(c *fiber.Ctx) error {
	var req email.DraftRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, "invalid JSON payload")
	}
	d, err := h.useCase.Draft(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, email.ErrMissingFields), errors.Is(err, email.ErrInvalidType):
			return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, err.Error())
		case errors.Is(err, email.ErrNotConfigured):
			return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryConfiguration, err.Error())
		default:
			return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryAIService, err.Error())
		}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"success": true, "email": d})
}

type sendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Type    string `json:"type"`
}

// Send delivers a finished draft.
// @Summary Send follow-up email
// @Tags    emails
// @Accept  json
// @Produce json
// @Param   input body sendEmailRequest true "send payload"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.FailureResponse
// @Failure 500 {object} presenter.FailureResponse
// @Router  /emails/send [post]
func (h *EmailHandler) Send(c *fiber.Ctx) error {
	var req sendEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.To) == "" {
		return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, "recipient address is required")
	}
	err := h.useCase.Send(c.Context(), req.To, email.Draft{Subject: req.Subject, Body: req.Body, Type: req.Type})
	if err != nil {
		switch {
		case errors.Is(err, email.ErrMissingFields):
			return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, err.Error())
		case errors.Is(err, email.ErrNotConfigured):
			return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryConfiguration, err.Error())
		default:
			return presenter.Fail(c, http.StatusInternalServerError, presenter.CategoryInternal, "failed to send email")
		}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"success": true})
}
