package store

import (
	"context"

	"github.com/lamijafatic/blog-website-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserFilter narrows user queries. Zero-valued fields are ignored.
type UserFilter struct {
	// IDs keeps only users whose id is listed.
	IDs []string
	// Email keeps only users with exactly this email.
	Email string
	// Text keeps users whose first or last name contains any of the words.
	Text string
}

// BlogFilter narrows blog queries. Zero-valued fields are ignored.
type BlogFilter struct {
	// UserIDs keeps only blogs authored by one of the listed users.
	UserIDs []string
	// ExcludeIDs drops the listed blogs.
	ExcludeIDs []string
	// Text keeps blogs whose title or description contains any of the words.
	Text string
}

// CommentFilter narrows comment queries. Zero-valued fields are ignored.
type CommentFilter struct {
	BlogID string
	UserID string
}

// Every Find method returns documents in insertion order. A nil page
// returns all matching documents.

type UserRepository interface {
	Insert(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Find(ctx context.Context, filter UserFilter, page *models.Page) ([]models.User, error)
	Count(ctx context.Context, filter UserFilter) (int64, error)
	Replace(ctx context.Context, user models.User) error
	Delete(ctx context.Context, id string) error
}

type BlogRepository interface {
	Insert(ctx context.Context, blog models.Blog) (models.Blog, error)
	FindByID(ctx context.Context, id string) (models.Blog, error)
	Find(ctx context.Context, filter BlogFilter, page *models.Page) ([]models.Blog, error)
	Count(ctx context.Context, filter BlogFilter) (int64, error)
	Replace(ctx context.Context, blog models.Blog) error
	Delete(ctx context.Context, id string) error
}

type CommentRepository interface {
	Insert(ctx context.Context, comment models.Comment) (models.Comment, error)
	FindByID(ctx context.Context, id string) (models.Comment, error)
	Find(ctx context.Context, filter CommentFilter, page *models.Page) ([]models.Comment, error)
	Count(ctx context.Context, filter CommentFilter) (int64, error)
	Replace(ctx context.Context, comment models.Comment) error
	Delete(ctx context.Context, id string) error
}
