package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rk2835/aquahub/internal/config"
	"github.com/rk2835/aquahub/internal/errs"
	"github.com/rk2835/aquahub/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(buf *bytes.Buffer) *server.Server {
	log := zerolog.New(buf)
	return &server.Server{
		Config: &config.Config{
			Server: config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
		},
		Logger: &log,
	}
}

func newTestEcho(s *server.Server) (*echo.Echo, *Middlewares) {
	e := echo.New()
	m := NewMiddlewares(s)
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler
	e.Use(RequestID(), m.ContextEnhancer.EnhanceContext())
	return e, m
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func serve(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusOK)
	})

	rec := serve(e, http.MethodGet, "/")
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestEnhanceContext_RequestScopedLogger(t *testing.T) {
	var buf bytes.Buffer
	e, _ := newTestEcho(newTestServer(&buf))

	e.GET("/api/users", func(c echo.Context) error {
		GetLogger(c).Info().Msg("from echo context")
		zerolog.Ctx(c.Request().Context()).Info().Msg("from request context")
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	e.ServeHTTP(httptest.NewRecorder(), req)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		assert.Equal(t, "req-1", entry["request_id"])
		assert.Equal(t, "GET", entry["method"])
		assert.Equal(t, "/api/users", entry["path"])
	}
}

func TestGetLogger_FallsBackToNop(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, GetLogger(c))
}

func TestGlobalErrorHandler_HTTPError(t *testing.T) {
	var buf bytes.Buffer
	e, _ := newTestEcho(newTestServer(&buf))
	e.POST("/register", func(c echo.Context) error {
		return errs.NewMissingFieldError("phone")
	})

	rec := serve(e, http.MethodPost, "/register")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "Missing required field: phone", body.Message)
	assert.True(t, body.Override)
	assert.Equal(t, []errs.FieldError{{Field: "phone", Error: "is required"}}, body.Errors)
}

func TestGlobalErrorHandler_UniqueViolation(t *testing.T) {
	var buf bytes.Buffer
	e, _ := newTestEcho(newTestServer(&buf))
	e.POST("/register", func(c echo.Context) error {
		return fmt.Errorf("register customer: %w", &pgconn.PgError{
			Code:           "23505",
			TableName:      "users",
			ConstraintName: "users_email_key",
		})
	})

	rec := serve(e, http.MethodPost, "/register")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "USER_ALREADY_EXISTS", body.Code)
	assert.Equal(t, "A User with this Email already exists", body.Message)
}

func TestGlobalErrorHandler_UnknownErrorIsGeneric(t *testing.T) {
	var buf bytes.Buffer
	e, _ := newTestEcho(newTestServer(&buf))
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("dial tcp 10.0.0.5:5432: secret detail")
	})

	rec := serve(e, http.MethodGet, "/boom")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Code)
	assert.NotContains(t, rec.Body.String(), "secret detail")
	assert.Contains(t, buf.String(), "secret detail")
}

func TestGlobalErrorHandler_RouteNotFound(t *testing.T) {
	var buf bytes.Buffer
	e, _ := newTestEcho(newTestServer(&buf))

	rec := serve(e, http.MethodGet, "/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeError(t, rec).Message)
}

func TestGlobalErrorHandler_Head(t *testing.T) {
	var buf bytes.Buffer
	e, _ := newTestEcho(newTestServer(&buf))
	e.HEAD("/x", func(c echo.Context) error {
		return errs.NewUnauthorizedError("no", false)
	})

	rec := serve(e, http.MethodHead, "/x")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRequestLogger_StatusFromError(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(&buf)
	e, m := newTestEcho(s)
	e.Use(m.Global.RequestLogger())
	e.POST("/register", func(c echo.Context) error {
		return fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23505", TableName: "users", ConstraintName: "users_email_key"})
	})

	serve(e, http.MethodPost, "/register")

	var access map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		if entry["message"] == "API" {
			access = entry
		}
	}
	require.NotNil(t, access)
	assert.Equal(t, float64(http.StatusBadRequest), access["status"])
	assert.Equal(t, "warn", access["level"])
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusTooManyRequests, statusFromError(errs.NewTooManyRequestsError("slow down")))
	assert.Equal(t, http.StatusMethodNotAllowed, statusFromError(echo.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("x")))
}

func TestCORS(t *testing.T) {
	var buf bytes.Buffer
	s := newTestServer(&buf)
	s.Config.Server.CORSAllowedOrigins = []string{"https://app.aquahub.test"}

	e, m := newTestEcho(s)
	e.Use(m.Global.CORS())
	e.GET("/api/users", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.aquahub.test")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.aquahub.test", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestRecover_PanicBecomes500(t *testing.T) {
	var buf bytes.Buffer
	e, m := newTestEcho(newTestServer(&buf))
	e.Use(m.Global.Recover())
	e.GET("/panic", func(c echo.Context) error { panic("kaput") })

	rec := serve(e, http.MethodGet, "/panic")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
