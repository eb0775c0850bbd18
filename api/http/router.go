package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kartierklass/ai-smart-interview-scheduler/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. Everything except
// health, readiness and auth sits behind the JWT middleware.
func Register(
	app *fiber.App,
	authMW fiber.Handler,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	candidate *handlers.CandidateHandler,
	interviewer *handlers.InterviewerHandler,
	schedule *handlers.ScheduleHandler,
	interview *handlers.InterviewHandler,
	note *handlers.NoteHandler,
	email *handlers.EmailHandler,
	draft *handlers.DraftHandler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Roster parsing
	v1.Post("/candidates/parse", authMW, candidate.Parse)

	// Interviewer directory
	ig := v1.Group("/interviewers", authMW)
	ig.Post("/", interviewer.Add)
	ig.Get("/", interviewer.List)
	ig.Get("/watch", interviewer.Watch)
	ig.Delete("/:id", interviewer.Delete)

	// Schedule generation
	v1.Post("/schedules/generate", authMW, schedule.Generate)

	// Persisted interviews and their note threads
	iv := v1.Group("/interviews", authMW)
	iv.Get("/", interview.List)
	iv.Get("/:id", interview.Get)
	iv.Post("/:id/notes", note.Add)
	iv.Get("/:id/notes", note.List)
	iv.Get("/:id/notes/watch", note.Watch)

	// Follow-up emails
	eg := v1.Group("/emails", authMW)
	eg.Post("/draft", email.Draft)
	eg.Post("/send", email.Send)

	// Per-user form draft
	dg := v1.Group("/drafts", authMW)
	dg.Get("/", draft.Get)
	dg.Put("/", draft.Put)
	dg.Delete("/", draft.Delete)
}
