package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"eggfarm/pkg/apperror"
)

func newGated(token string, calls *int) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperror.Handler(log.New(&bytes.Buffer{}, "", 0))
	g := e.Group("", BearerAuth(BearerConfig{Token: token}))
	g.GET("/data", func(c echo.Context) error {
		*calls++
		return c.String(http.StatusOK, "ok")
	})
	return e
}

func TestBearerAuth(t *testing.T) {
	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"no header", "", http.StatusUnauthorized, `{"error":"Missing or invalid Authorization header"}`},
		{"wrong scheme", "Basic c2VjcmV0", http.StatusUnauthorized, `{"error":"Missing or invalid Authorization header"}`},
		{"scheme only", "Bearer", http.StatusUnauthorized, `{"error":"Missing or invalid Authorization header"}`},
		{"empty token", "Bearer   ", http.StatusUnauthorized, `{"error":"Missing or invalid Authorization header"}`},
		{"wrong token", "Bearer nope", http.StatusForbidden, `{"error":"Invalid token"}`},
		{"token prefix", "Bearer secre", http.StatusForbidden, `{"error":"Invalid token"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			e := newGated("secret", &calls)
			req := httptest.NewRequest(http.MethodGet, "/data", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			assert.JSONEq(t, tc.body, rec.Body.String())
			assert.Zero(t, calls, "handler must not run")
		})
	}
}

func TestBearerAuth_Accepts(t *testing.T) {
	calls := 0
	e := newGated("secret", &calls)
	for _, h := range []string{"Bearer secret", "bearer secret"} {
		req := httptest.NewRequest(http.MethodGet, "/data", nil)
		req.Header.Set(echo.HeaderAuthorization, h)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 2, calls)
}

func TestBearerAuth_EmptySecretRejectsEverything(t *testing.T) {
	calls := 0
	e := newGated("", &calls)
	req := httptest.NewRequest(http.MethodGet, "/data", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer anything")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, calls)
}
