package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/lamijafatic/blog-website-api/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldRole        = "role"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldUserID      = "user_id"
	FieldBlogID      = "blog_id"
	FieldImage       = "image"
	FieldContent     = "content"
)

// EmailRX matches the accepted email shape.
var EmailRX = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RequestValidator implements the Validator interface for the request
// bodies of the blog API: RegisterRequest, LoginRequest, UserRequest,
// BlogCreateRequest and CommentRequest, in value or pointer form.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator and returns it as
// the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields every
// required field of the type is checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)
	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)
	case models.UserRequest:
		return v.validateUserRequest(value, fields...)
	case *models.UserRequest:
		return v.validateUserRequest(*value, fields...)
	case models.BlogCreateRequest:
		return v.validateBlogCreateRequest(value, fields...)
	case *models.BlogCreateRequest:
		return v.validateBlogCreateRequest(*value, fields...)
	case models.CommentRequest:
		return v.validateCommentRequest(value, fields...)
	case *models.CommentRequest:
		return v.validateCommentRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (v *RequestValidator) validateRegisterRequest(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldFirstName, FieldLastName}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !EmailRX.MatchString(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		case FieldFirstName:
			if blank(request.FirstName) {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if blank(request.LastName) {
				return ErrEmptyLastName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if blank(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUserRequest accepts an empty role, which the service defaults,
// and role names in any letter case.
func (v *RequestValidator) validateUserRequest(request models.UserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldFirstName, FieldLastName, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !EmailRX.MatchString(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		case FieldFirstName:
			if blank(request.FirstName) {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if blank(request.LastName) {
				return ErrEmptyLastName
			}
		case FieldRole:
			if request.Role == "" {
				continue
			}
			if _, err := models.ParseRole(string(request.Role)); err != nil {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateBlogCreateRequest(request models.BlogCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldUserID, FieldImage}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if blank(request.Title) {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if blank(request.Description) {
				return ErrEmptyDescription
			}
		case FieldUserID:
			if blank(request.UserID) {
				return ErrEmptyUserID
			}
		case FieldImage:
			if len(request.Image) == 0 {
				return ErrEmptyImage
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCommentRequest(request models.CommentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBlogID, FieldUserID, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldBlogID:
			if blank(request.BlogID) {
				return ErrEmptyBlogID
			}
		case FieldUserID:
			if blank(request.UserID) {
				return ErrEmptyUserID
			}
		case FieldContent:
			if blank(request.Content) {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
