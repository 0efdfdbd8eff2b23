package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
)

// recoveryStackBytes caps how much of the goroutine stack ends up in a log line.
const recoveryStackBytes = 4 << 10

// Recovery returns middleware that converts a handler panic into a plain 500
// response. The panic value and a truncated stack go to the log; the client
// only ever sees the generic message.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					buf := make([]byte, recoveryStackBytes)
					n := runtime.Stack(buf, false)

					log.Error("handler panicked",
						"panic", fmt.Sprint(r),
						"method", c.Request().Method,
						"path", c.Request().URL.Path,
						"stack", string(buf[:n]),
					)

					err = c.JSON(http.StatusInternalServerError, map[string]string{
						"error": "internal server error",
					})
				}
			}()
			return next(c)
		}
	}
}
