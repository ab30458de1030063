package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
)

// Recovery returns Echo middleware that converts a handler panic into
// a 500 response instead of tearing down the server mid-submission.
// The stack is logged together with the request id assigned by
// RequestLog so the crash can be tied to the call that caused it.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				buf := make([]byte, 4096)
				n := runtime.Stack(buf, false)
				reqID, _ := c.Get("request_id").(string)

				log.Error("panic recovered",
					"error", fmt.Sprint(r),
					"request_id", reqID,
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"stack", string(buf[:n]),
				)

				err = c.JSON(http.StatusInternalServerError, echo.Map{
					"error": "internal server error",
				})
			}()
			return next(c)
		}
	}
}
