package router

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rk2835/aquahub/internal/config"
	"github.com/rk2835/aquahub/internal/handler"
	"github.com/rk2835/aquahub/internal/middleware"
	"github.com/rk2835/aquahub/internal/model"
	"github.com/rk2835/aquahub/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubServices struct{}

func (stubServices) RegisterCustomer(context.Context, *model.CustomerRegistration) (*model.RegistrationResponse, error) {
	return &model.RegistrationResponse{Message: "Customer registered successfully", UserID: uuid.New()}, nil
}

func (stubServices) RegisterVendor(context.Context, *model.VendorRegistration) (*model.RegistrationResponse, error) {
	return &model.RegistrationResponse{Message: "Vendor registered successfully", UserID: uuid.New()}, nil
}

func (stubServices) ListUsers(context.Context) (*model.UserListResponse, error) {
	return &model.UserListResponse{Users: []model.UserSummary{}}, nil
}

func (stubServices) Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error) {
	return &model.LoginResponse{Success: true, Redirect: "/vendor-dashboard"}, nil
}

const customerBody = `{"email":"a@b.co","password":"pw","firstName":"A","lastName":"B",
	"phone":"1","address":"x","city":"y","state":"z","postalCode":"1"}`

func newTestRouter(t *testing.T, rateLimit float64) *echo.Echo {
	return newTestRouterWithLimits(t, rateLimit, 0)
}

func newTestRouterWithLimits(t *testing.T, registerLimit, loginLimit float64) *echo.Echo {
	t.Helper()

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "openapi.html"), []byte("<html></html>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "openapi.json"), []byte(`{"openapi":"3.0.3"}`), 0o600))

	log := zerolog.New(&bytes.Buffer{})
	s := &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "local"},
			Server: config.ServerConfig{
				CORSAllowedOrigins: []string{"*"},
				RegisterRateLimit:  registerLimit,
				LoginRateLimit:     loginLimit,
			},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &log,
	}

	svc := stubServices{}
	h := &handler.Handlers{
		Health:       handler.NewHealthHandler(s),
		OpenAPI:      handler.NewOpenAPIHandler(s, staticDir),
		Registration: handler.NewRegistrationHandler(s, svc),
		User:         handler.NewUserHandler(s, svc),
		Auth:         handler.NewAuthHandler(s, svc),
	}

	return NewRouter(s, h)
}

func request(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestNewRouter_Routes(t *testing.T) {
	e := newTestRouter(t, 0)

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodPost, "/api/register/customer", customerBody, http.StatusCreated},
		{http.MethodPost, "/api/register/vendor", `{}`, http.StatusBadRequest},
		{http.MethodGet, "/api/users", "", http.StatusOK},
		{http.MethodPost, "/api/login", `{"email":"a@b.co","password":"pw"}`, http.StatusOK},
		{http.MethodGet, "/api/health", "", http.StatusOK},
		{http.MethodGet, "/docs", "", http.StatusOK},
		{http.MethodGet, "/static/openapi.json", "", http.StatusOK},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := request(e, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestNewRouter_RateLimitOnlyOnRegister(t *testing.T) {
	e := newTestRouter(t, 1)

	assert.Equal(t, http.StatusCreated, request(e, http.MethodPost, "/api/register/customer", customerBody).Code)
	assert.Equal(t, http.StatusTooManyRequests, request(e, http.MethodPost, "/api/register/vendor", `{}`).Code)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, request(e, http.MethodGet, "/api/users", "").Code)
	}
}

func TestNewRouter_SecurityHeaders(t *testing.T) {
	e := newTestRouter(t, 0)

	rec := request(e, http.MethodGet, "/api/health", "")

	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
}

func TestNewRouter_LoginIsRateLimited(t *testing.T) {
	e := newTestRouterWithLimits(t, 0, 1)
	body := `{"email":"a@b.co","password":"pw"}`

	assert.Equal(t, http.StatusOK, request(e, http.MethodPost, "/api/login", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, request(e, http.MethodPost, "/api/login", body).Code)
	assert.Equal(t, http.StatusCreated, request(e, http.MethodPost, "/api/register/customer", customerBody).Code)
}
