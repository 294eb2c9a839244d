package adapter

import "errors"

var (
	ErrEmptyBaseURL     = errors.New("image host base url is empty")
	ErrEmptyClientID    = errors.New("image host client id is empty")
	ErrEmptyImage       = errors.New("image is empty")
	ErrEmptyDeleteToken = errors.New("image delete token is empty")

	ErrUploadFailed    = errors.New("image upload failed")
	ErrInvalidResponse = errors.New("image host returned an invalid response")
)

// Errors mapped from provider HTTP status codes.
var (
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("client unauthorized")
	ErrNotFound        = errors.New("image not found")
	ErrRateLimited     = errors.New("rate limited by image host")
	ErrHostUnavailable = errors.New("image host unavailable")
)
