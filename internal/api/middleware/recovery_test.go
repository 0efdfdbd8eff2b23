package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoveryContext(t *testing.T, method, path string) (echo.Context, *httptest.ResponseRecorder, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	e := echo.New()
	req := httptest.NewRequest(method, path, http.NoBody)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec, &buf
}

func TestRecovery_NoPanic(t *testing.T) {
	t.Parallel()

	c, rec, buf := recoveryContext(t, http.MethodGet, "/api/v1/offers/all")
	log := slog.New(slog.NewTextHandler(buf, nil))

	handler := Recovery(log)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String(), "a clean request should log nothing")
}

func TestRecovery_PanicString(t *testing.T) {
	t.Parallel()

	c, rec, buf := recoveryContext(t, http.MethodPost, "/api/v1/offers")
	log := slog.New(slog.NewTextHandler(buf, nil))

	handler := Recovery(log)(func(_ echo.Context) error {
		panic("offer store unavailable")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")

	logOutput := buf.String()
	assert.Contains(t, logOutput, "handler panicked")
	assert.Contains(t, logOutput, "offer store unavailable")
	assert.Contains(t, logOutput, "path=/api/v1/offers")
}

func TestRecovery_PanicError(t *testing.T) {
	t.Parallel()

	c, rec, buf := recoveryContext(t, http.MethodPut, "/api/v1/offers/offer-1")
	log := slog.New(slog.NewTextHandler(buf, nil))

	handler := Recovery(log)(func(_ echo.Context) error {
		panic(errors.New("connection pool closed"))
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "connection pool closed")
}
