package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kartierklass/ai-smart-interview-scheduler/api/http/presenter"
	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/candidate"
)

type CandidateHandler struct {
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewCandidateHandler() *CandidateHandler {
	return &CandidateHandler{maxBytes: 10 << 20} // 10MB
}

// Parse accepts an uploaded roster and returns the normalized candidates.
// @Summary Parse candidate roster
// @Description Accepts a .csv, .txt or .xlsx roster and returns the parsed candidates.
// @Tags    candidates
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Roster file (.csv, .txt or .xlsx)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.FailureResponse
// @Router  /candidates/parse [post]
func (h *CandidateHandler) Parse(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, "file is required (csv, txt or xlsx)")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes))
	if err != nil {
		return presenter.Fail(c, http.StatusBadRequest, presenter.CategoryInvalidRequest, "failed to read uploaded file")
	}

	candidates, err := candidate.ParseRosterFile(fh.Filename, data)
	if err != nil {
		category := presenter.CategoryInvalidRequest
		if errors.Is(err, candidate.ErrNoValidCandidates) {
			category = presenter.CategoryNoValidCandidates
		}
		return presenter.Fail(c, http.StatusBadRequest, category, err.Error())
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success":    true,
		"candidates": candidates,
		"count":      len(candidates),
	})
}
