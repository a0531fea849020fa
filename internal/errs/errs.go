// Package errs defines the error shapes returned by the API.
//
// Every failure that reaches a client is rendered as an HTTPError, so
// registration, listing and login endpoints share one JSON body:
//
//	{"code": "BAD_REQUEST", "message": "...", "status": 400, "errors": [...]}
package errs
