package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/labstack/echo/v4"
	"github.com/rk2835/aquahub/internal/errs"
	"github.com/rk2835/aquahub/internal/server"
)

type AuthMiddleware struct {
	server *server.Server
}

func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
	}
}

// Enabled reports whether a Clerk secret key is configured.
func (auth *AuthMiddleware) Enabled() bool {
	return auth.server.Config.Auth.SecretKey != ""
}

// RequireAuthIfEnabled is RequireAuth when Clerk is configured and a
// pass-through otherwise.
func (auth *AuthMiddleware) RequireAuthIfEnabled() echo.MiddlewareFunc {
	if !auth.Enabled() {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return auth.RequireAuth
}

// RequireAuth verifies the Clerk session token from the Authorization
// header and exposes the user id and role on the echo context.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return echo.WrapMiddleware(
		clerkhttp.WithHeaderAuthorization(
			clerkhttp.AuthorizationFailureHandler(http.HandlerFunc(auth.writeUnauthorized)),
		),
	)(func(c echo.Context) error {
		claims, ok := clerk.SessionClaimsFromContext(c.Request().Context())
		if !ok {
			GetLogger(c).Warn().
				Str("function", "RequireAuth").
				Msg("could not get session claims from context")
			return errs.NewUnauthorizedError("Unauthorized", false)
		}

		c.Set(UserIDKey, claims.Subject)
		c.Set(UserRoleKey, claims.ActiveOrganizationRole)
		c.Set("permissions", claims.Claims.ActiveOrganizationPermissions)

		GetLogger(c).Debug().
			Str("function", "RequireAuth").
			Str("user_id", claims.Subject).
			Msg("user authenticated")

		return next(c)
	})
}

func (auth *AuthMiddleware) writeUnauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	if err := json.NewEncoder(w).Encode(errs.NewUnauthorizedError("Unauthorized", false)); err != nil {
		auth.server.Logger.Error().
			Err(err).
			Str("function", "RequireAuth").
			Msg("failed to write JSON response")
		return
	}

	auth.server.Logger.Warn().
		Str("function", "RequireAuth").
		Str("path", r.URL.Path).
		Msg("rejected request without a valid session")
}
