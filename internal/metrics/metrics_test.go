package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerExposesCounters(t *testing.T) {
	RecordsCreated.WithLabelValues(KindRecipe).Inc()

	app := fiber.New()
	app.Use(Middleware())
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	app.Get("/metrics", Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := string(body)
	assert.True(t, strings.Contains(out, `meals_records_created_total{kind="recipe"}`))
	assert.True(t, strings.Contains(out, `meals_http_request_duration_seconds_count{method="GET",route="/ping",status="200"} 1`))
}

func TestLoginsByResult(t *testing.T) {
	before := testutil.ToFloat64(Logins.WithLabelValues("success"))
	Logins.WithLabelValues("success").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(Logins.WithLabelValues("success")))
}
