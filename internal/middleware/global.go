package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rk2835/aquahub/internal/errs"
	"github.com/rk2835/aquahub/internal/server"
	"github.com/rk2835/aquahub/internal/sqlerr"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares holds the middleware applied to every route plus the
// global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger writes one access-log line per request. The level follows
// the final status, which for failed requests is taken from the error.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// The error handler has not written the response yet.
			// See https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			if v.Error != nil {
				statusCode = statusFromError(v.Error)
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			if userID := GetUserID(c); userID != "" {
				e = e.Str("user_id", userID)
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

func statusFromError(err error) int {
	var httpErr *errs.HTTPError
	var echoErr *echo.HTTPError

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Status
	case errors.As(err, &echoErr):
		return echoErr.Code
	default:
		return statusFromHTTPError(sqlerr.HandleError(err))
	}
}

func statusFromHTTPError(err error) int {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	return http.StatusInternalServerError
}

func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler turns any error returned by a handler into the JSON
// error body. Database errors are classified by sqlerr; anything it does
// not recognise becomes a generic 500 and only the log sees the cause.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if echoErr.Code == http.StatusNotFound {
				err = errs.NewNotFoundError("Route not found", false, nil)
			}
		} else {
			err = sqlerr.HandleError(err)
		}
	}

	var echoErr *echo.HTTPError
	var status int
	var code string
	var message string
	var fieldErrors []errs.FieldError
	var action *errs.Action
	override := false

	switch {
	case errors.As(err, &httpErr):
		status = httpErr.Status
		code = httpErr.Code
		message = httpErr.Message
		fieldErrors = httpErr.Errors
		action = httpErr.Action
		override = httpErr.Override

	case errors.As(err, &echoErr):
		status = echoErr.Code
		code = errs.MakeUpperCaseWithUnderscores(http.StatusText(status))
		if msg, ok := echoErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(echoErr.Code)
		}

	default:
		status = http.StatusInternalServerError
		code = errs.MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError))
		message = http.StatusText(http.StatusInternalServerError)
	}

	logger := GetLogger(c)
	if status >= http.StatusInternalServerError {
		logger.Error().Stack().
			Err(originalErr).
			Int("status", status).
			Str("error_code", code).
			Msg(message)
	} else {
		logger.Warn().
			Err(originalErr).
			Int("status", status).
			Str("error_code", code).
			Msg(message)
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}

	_ = c.JSON(status, errs.HTTPError{
		Code:     code,
		Message:  message,
		Status:   status,
		Override: override,
		Errors:   fieldErrors,
		Action:   action,
	})
}
