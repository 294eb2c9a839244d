package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail     = errors.New("a valid email is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyFirstName   = errors.New("first name is required")
	ErrEmptyLastName    = errors.New("last name is required")
	ErrInvalidRole      = errors.New("role must be ADMIN or USER")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyDescription = errors.New("description is required")
	ErrEmptyUserID      = errors.New("user id is required")
	ErrEmptyBlogID      = errors.New("blog id is required")
	ErrEmptyImage       = errors.New("image is required")
	ErrEmptyContent     = errors.New("content is required")
)
