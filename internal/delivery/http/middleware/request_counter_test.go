package middleware

import (
	"net/http/httptest"
	"testing"

	"reels-service/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCountRequests(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	counter := metrics.NewRequestCounter(zap.New(core))

	app := fiber.New()
	app.Use(CountRequests(counter))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	// Unknown routes are counted too.
	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	assert.EqualValues(t, 4, counter.Count())
	entries := logs.FilterField(zap.String("route", "GET /ping")).All()
	require.Len(t, entries, 3)
	assert.EqualValues(t, 3, entries[2].ContextMap()["connections"])
}
