package middleware

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"booking-backend/internal/config"

	"github.com/go-redis/redismock/v9"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.UnixMilli(1_900_000_000_000)

func testRateLimitConfig() config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:        true,
		Capacity:       30,
		RefillTokens:   1,
		RefillInterval: 2 * time.Second,
		TTL:            10 * time.Minute,
		Prefix:         "rl",
	}
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func limitedApp(l *RateLimiter) *fiber.App {
	app := fiber.New()
	app.Post("/venues", l.Handler(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	return app
}

func expectBucket(rmock redismock.ClientMock) *redismock.ExpectedCmd {
	return rmock.ExpectEvalSha(tokenBucket.Hash(), []string{"rl:test"},
		testNow.UnixMilli(), 30, 1, int64(2000), int64(600))
}

func newTestLimiter(t *testing.T) (*RateLimiter, redismock.ClientMock) {
	t.Helper()
	db, rmock := redismock.NewClientMock()
	l := NewRateLimiter(testRateLimitConfig(), db, quietLogger())
	l.now = func() time.Time { return testNow }
	l.key = func(*fiber.Ctx) string { return "rl:test" }
	return l, rmock
}

func TestRateLimiter_Allows(t *testing.T) {
	l, rmock := newTestLimiter(t)
	expectBucket(rmock).SetVal([]interface{}{int64(1), int64(29), int64(0)})

	resp, err := limitedApp(l).Test(httptest.NewRequest(fiber.MethodPost, "/venues", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "30", resp.Header.Get("X-RateLimit-Limit"))
	assert.Equal(t, "29", resp.Header.Get("X-RateLimit-Remaining"))
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestRateLimiter_Blocks(t *testing.T) {
	l, rmock := newTestLimiter(t)
	expectBucket(rmock).SetVal([]interface{}{int64(0), int64(0), int64(1500)})

	resp, err := limitedApp(l).Test(httptest.NewRequest(fiber.MethodPost, "/venues", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "2", resp.Header.Get(fiber.HeaderRetryAfter))
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	l, rmock := newTestLimiter(t)
	expectBucket(rmock).SetErr(errors.New("connection refused"))

	resp, err := limitedApp(l).Test(httptest.NewRequest(fiber.MethodPost, "/venues", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestRateLimiter_Disabled(t *testing.T) {
	cfg := testRateLimitConfig()
	cfg.Enabled = false
	db, rmock := redismock.NewClientMock()

	resp, err := limitedApp(NewRateLimiter(cfg, db, quietLogger())).Test(httptest.NewRequest(fiber.MethodPost, "/venues", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NoError(t, rmock.ExpectationsWereMet())

	resp, err = limitedApp(NewRateLimiter(testRateLimitConfig(), nil, quietLogger())).Test(httptest.NewRequest(fiber.MethodPost, "/venues", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestClientRouteKey(t *testing.T) {
	l := NewRateLimiter(testRateLimitConfig(), nil, quietLogger())
	var key string
	app := fiber.New()
	app.Post("/venues/:id/edit", func(c *fiber.Ctx) error {
		key = l.clientRouteKey(c)
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/venues/12/edit", nil))
	require.NoError(t, err)

	assert.Regexp(t, `^rl:ip:.+:route:POST /venues/:id/edit$`, key)
}

func TestMetrics(t *testing.T) {
	app := fiber.New()
	app.Use(Metrics())
	app.Get("/venues/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "teapot") })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/venues/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
}
