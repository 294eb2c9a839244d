// Package http implements the REST transport of the blog API.
//
// It exposes route wiring, the auth, user, blog and comment handlers, and
// the middleware chain: panic recovery, request tracing, access logging,
// per-client rate limiting, bearer authentication and role checks.
// Service errors are translated to HTTP statuses in one place, see
// statusFromError.
package http
