package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRateLimited(t *testing.T, handler echo.HandlerFunc, ip string) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/offers", http.NoBody)
	req.Header.Set("X-Real-IP", ip)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	return rec.Code
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 3)
	handler := rl.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for range 3 {
		assert.Equal(t, http.StatusOK, doRateLimited(t, handler, "10.0.0.1"))
	}
}

func TestRateLimiter_BlocksBeyondBurst(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0.001, 2)
	handler := rl.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, doRateLimited(t, handler, "10.0.0.2"))
	assert.Equal(t, http.StatusOK, doRateLimited(t, handler, "10.0.0.2"))
	assert.Equal(t, http.StatusTooManyRequests, doRateLimited(t, handler, "10.0.0.2"))
}

func TestRateLimiter_TracksClientsSeparately(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0.001, 1)
	handler := rl.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, doRateLimited(t, handler, "10.0.0.3"))
	assert.Equal(t, http.StatusTooManyRequests, doRateLimited(t, handler, "10.0.0.3"))
	assert.Equal(t, http.StatusOK, doRateLimited(t, handler, "10.0.0.4"))
}
