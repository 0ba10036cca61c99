package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubLimiter пропускает первые allow запросов
type stubLimiter struct {
	allow int
	seen  []string
}

func (l *stubLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	l.seen = append(l.seen, key)
	if len(l.seen) <= l.allow {
		return true, 0, nil
	}
	return false, 1500 * time.Millisecond, nil
}

func TestLogger_RequestID(t *testing.T) {
	app := fiber.New()
	app.Use(Logger(zap.NewNop()))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(requestID(c))
	})

	t.Run("generated when missing", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
	})

	t.Run("propagated from request", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-42")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "req-42", resp.Header.Get(RequestIDHeader))
	})
}

func TestRecovery(t *testing.T) {
	app := fiber.New()
	app.Use(Recovery(zap.NewNop()))
	app.Use(Logger(zap.NewNop()))
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestRateLimit_RetryAfterRoundsUp(t *testing.T) {
	limiter := &stubLimiter{allow: 1}
	app := fiber.New()
	app.Use(RateLimit(limiter, zap.NewNop()))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "2", resp.Header.Get(fiber.HeaderRetryAfter))

	require.Len(t, limiter.seen, 2)
	assert.Equal(t, limiter.seen[0], limiter.seen[1], "both requests come from the same client")
}
