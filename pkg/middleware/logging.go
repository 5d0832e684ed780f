package middleware

import (
	"log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// RequestID tags each request with a uuid in X-Request-Id, keeping one sent by a proxy.
func RequestID() echo.MiddlewareFunc {
	return echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	})
}

// RequestLogger writes one line per request to logger.
func RequestLogger(logger *log.Logger) echo.MiddlewareFunc {
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogRequestID: true,
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			if v.Error != nil {
				logger.Printf("{%s} %s %s %d - %d ms - err:%q", v.RequestID, v.Method, v.URI, v.Status, v.Latency.Milliseconds(), v.Error.Error())
				return nil
			}
			logger.Printf("{%s} %s %s %d - %d ms", v.RequestID, v.Method, v.URI, v.Status, v.Latency.Milliseconds())
			return nil
		},
	})
}
