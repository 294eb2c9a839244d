package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the given id or email.
	// Malformed ids are reported the same way.
	ErrUserNotFound = errors.New("user was not found")

	// ErrBlogNotFound is returned when no blog matches the given id.
	ErrBlogNotFound = errors.New("blog was not found")

	// ErrCommentNotFound is returned when no comment matches the given id.
	ErrCommentNotFound = errors.New("comment was not found")
)

// Low-level database operation errors. These wrap driver errors returned
// before any domain logic can be applied.
var (
	// ErrConnecting is returned when the database cannot be reached.
	ErrConnecting = errors.New("error connecting to database")

	// ErrExecutingQuery is returned when a read or write command fails.
	ErrExecutingQuery = errors.New("error executing database query")

	// ErrDecodingDocument is returned when a stored document cannot be
	// decoded into its model.
	ErrDecodingDocument = errors.New("error decoding document")
)
