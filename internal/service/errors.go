package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrForbidden               = errors.New("insufficient role")

	ErrImageUploadFailed = errors.New("image upload failed")
	ErrImageDeleteFailed = errors.New("image deletion failed")
	ErrNoImageToDelete   = errors.New("no image to delete")

	ErrNoBlogsForUser = errors.New("no blogs found for user")
)
