package jwt

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartierklass/ai-smart-interview-scheduler/pkg/auth"
)

func protectedApp(secret, issuer string) *fiber.App {
	app := fiber.New()
	app.Get("/protected", NewAuthMiddleware(secret, issuer), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId":    c.Locals("userId"),
			"userName":  c.Locals("userName"),
			"userEmail": c.Locals("userEmail"),
		})
	})
	return app
}

func TestGenerateAndValidateRoundTrip(t *testing.T) {
	gen := NewGenerator("test-secret", "scheduler-test", time.Minute)
	user := auth.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"}

	token, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	app := protectedApp("test-secret", "scheduler-test")

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// bare token without the Bearer prefix is accepted too
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestMiddlewareRejects(t *testing.T) {
	gen := NewGenerator("test-secret", "scheduler-test", time.Minute)
	user := auth.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"}
	token, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	cases := []struct {
		name   string
		app    *fiber.App
		header string
	}{
		{"missing header", protectedApp("test-secret", "scheduler-test"), ""},
		{"wrong secret", protectedApp("other-secret", "scheduler-test"), "Bearer " + token},
		{"wrong issuer", protectedApp("test-secret", "other-issuer"), "Bearer " + token},
		{"garbage token", protectedApp("test-secret", "scheduler-test"), "Bearer not.a.jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := tc.app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, 401, resp.StatusCode)
		})
	}
}

func TestExpiredToken(t *testing.T) {
	gen := NewGenerator("test-secret", "scheduler-test", -time.Minute)
	token, err := gen.Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	app := protectedApp("test-secret", "scheduler-test")
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
