// Package middleware holds the echo middleware shared by all routes:
// request ids, request-scoped logging, New Relic tracing, CORS, panic
// recovery, optional Clerk authentication, registration rate limiting and
// the global error handler.
package middleware
