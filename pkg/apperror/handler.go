package apperror

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Handler returns an echo.HTTPErrorHandler that renders every error as
// {"error": message}. Server-side failures are logged under a fresh id and
// their cause is never sent to the client.
func Handler(logger *log.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		msg := MsgInternal

		var ae *Error
		var he *echo.HTTPError
		switch {
		case errors.As(err, &ae):
			status, msg = ae.Status, ae.Message
		case errors.As(err, &he):
			status = he.Code
			msg = fmt.Sprint(he.Message)
			if he.Internal != nil {
				err = he.Internal
			}
		}

		if status >= http.StatusInternalServerError {
			id := uuid.New().String()
			logger.Printf("[%s] %s %s failed with status %d: %v", id, c.Request().Method, c.Request().URL.Path, status, err)
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, echo.Map{"error": msg})
		}
		if werr != nil {
			logger.Printf("write error response: %v", werr)
		}
	}
}
