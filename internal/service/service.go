// Package service contains the registration business logic.
//
// Services sit between the HTTP handlers and the repositories. They hash
// credentials, apply registration defaults, run multi-row writes inside a
// single transaction and hand off follow-up work to the job queue.
package service
