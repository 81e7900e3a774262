package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/leave-tracker/internal/interfaces/http"
)

func TestRateLimiter_RafagaPorClave(t *testing.T) {
	l := apphttp.NewRateLimiter(1, 2)
	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"), "la ráfaga se agotó")
	assert.True(t, l.Allow("10.0.0.2"), "cada IP tiene su propio bucket")
}

func TestRateLimiter_Middleware429(t *testing.T) {
	app := fiber.New()
	app.Post("/login", apphttp.NewRateLimiter(1, 1).Middleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	first, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
	require.NoError(t, err)
	first.Body.Close()
	assert.Equal(t, http.StatusNoContent, first.StatusCode)

	second, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
	require.NoError(t, err)
	defer second.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, second.StatusCode)
}

func TestRateLimiter_NilNoLimita(t *testing.T) {
	var l *apphttp.RateLimiter
	app := fiber.New()
	app.Get("/", l.Middleware(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}
