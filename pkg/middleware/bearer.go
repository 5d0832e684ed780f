package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/labstack/echo/v4"

	"eggfarm/pkg/apperror"
)

const (
	msgBadHeader    = "Missing or invalid Authorization header"
	msgInvalidToken = "Invalid token"
)

// BearerConfig holds the shared secret every data route is checked against.
type BearerConfig struct {
	Token string
}

// BearerAuth rejects requests without "Authorization: Bearer <token>" (401)
// and requests whose token differs from cfg.Token (403).
func BearerAuth(cfg BearerConfig) echo.MiddlewareFunc {
	want := []byte(cfg.Token)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return apperror.Unauthenticated(msgBadHeader)
			}
			if len(want) == 0 || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
				return apperror.Forbidden(msgInvalidToken)
			}
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
