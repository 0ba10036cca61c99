package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/property-locator/internal/pkg/errors"
)

func sendAndDecode(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Set(requestIDHeader, "req-1")
		return handler(c)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	return resp.StatusCode, decoded
}

func TestSendError(t *testing.T) {
	t.Run("wrapped app error keeps its status", func(t *testing.T) {
		status, body := sendAndDecode(t, func(c *fiber.Ctx) error {
			return SendError(c, fmt.Errorf("resolve: %w", errors.ErrInvalidQuery))
		})

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "INVALID_QUERY", body["error"].(map[string]interface{})["code"])
		assert.Equal(t, "req-1", body["request_id"])
	})

	t.Run("unknown error becomes 500", func(t *testing.T) {
		status, body := sendAndDecode(t, func(c *fiber.Ctx) error {
			return SendError(c, assert.AnError)
		})

		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, errors.ErrInternalServer.Code, body["error"].(map[string]interface{})["code"])
	})
}

func TestSendSuccess(t *testing.T) {
	status, body := sendAndDecode(t, func(c *fiber.Ctx) error {
		return SendSuccess(c, []string{"goa"}, &Meta{Total: 1})
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []interface{}{"goa"}, body["data"])
	assert.Equal(t, float64(1), body["meta"].(map[string]interface{})["total"])
}
