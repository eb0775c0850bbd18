package presenter

import "github.com/gofiber/fiber/v2"

// Failure categories surfaced in the error envelope.
const (
	CategoryUnauthorized        = "Unauthorized"
	CategoryInvalidRequest      = "Invalid Request"
	CategoryNoValidCandidates   = "No Valid Candidates"
	CategoryNoValidInterviewers = "No Valid Interviewers"
	CategoryConfiguration       = "Configuration Error"
	CategoryAIService           = "AI Service Error"
	CategoryIntegrity           = "Schedule Integrity Error"
	CategoryCapacity            = "Capacity Exceeded"
	CategoryInternal            = "Internal Server Error"
)

// FailureResponse is the uniform error envelope: success is always false,
// error is a stable category and details carries the human message.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Fail(c *fiber.Ctx, status int, category, details string) error {
	return JSON(c, status, FailureResponse{Success: false, Error: category, Details: details})
}
