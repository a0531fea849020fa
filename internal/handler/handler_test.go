package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rk2835/aquahub/internal/config"
	"github.com/rk2835/aquahub/internal/errs"
	"github.com/rk2835/aquahub/internal/middleware"
	"github.com/rk2835/aquahub/internal/model"
	"github.com/rk2835/aquahub/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeRegistrar struct {
	customers []*model.CustomerRegistration
	vendors   []*model.VendorRegistration
	err       error
	resp      *model.RegistrationResponse
}

func (f *fakeRegistrar) RegisterCustomer(_ context.Context, req *model.CustomerRegistration) (*model.RegistrationResponse, error) {
	f.customers = append(f.customers, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeRegistrar) RegisterVendor(_ context.Context, req *model.VendorRegistration) (*model.RegistrationResponse, error) {
	f.vendors = append(f.vendors, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeUserLister struct {
	resp *model.UserListResponse
	err  error
}

func (f *fakeUserLister) ListUsers(context.Context) (*model.UserListResponse, error) {
	return f.resp, f.err
}

type fakeAuthenticator struct {
	got  *model.LoginRequest
	resp *model.LoginResponse
	err  error
}

func (f *fakeAuthenticator) Login(_ context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	f.got = req
	return f.resp, f.err
}

func newTestServer(buf *bytes.Buffer) *server.Server {
	log := zerolog.New(buf)
	return &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "local"},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &log,
	}
}

// newTestEcho mirrors the router's error handling and request context.
func newTestEcho(s *server.Server) *echo.Echo {
	m := middleware.NewMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler
	e.Use(middleware.RequestID(), m.ContextEnhancer.EnhanceContext())
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
