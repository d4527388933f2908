package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

// SetupErrorHandler renders every error as {"detail": ...}. Errors that are not
// *echo.HTTPError are logged and answered with 500.
func SetupErrorHandler(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = http.StatusText(code)
			if text, ok := httpErr.Message.(string); ok {
				message = text
			}
		} else {
			log.Error(msg.GetMessage("app.unhandled-error", c.Request().Method, c.Request().URL.Path), zap.Error(err))
		}

		var sendErr error
		if c.Request().Method == http.MethodHead {
			sendErr = c.NoContent(code)
		} else {
			sendErr = c.JSON(code, map[string]string{"detail": message})
		}
		if sendErr != nil {
			log.Error(msg.GetMessage("app.unhandled-error", c.Request().Method, c.Request().URL.Path), zap.Error(sendErr))
		}
	}
}
