// Package lib groups integrations that sit outside the request path:
// background jobs over Redis (job) and transactional email (email).
package lib
