package service

import (
	"context"

	"github.com/lamijafatic/blog-website-api/models"
)

// AuthService registers accounts and issues and verifies bearer tokens.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	List(ctx context.Context, page models.Page) (models.UserPage, error)
	ListAll(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (models.User, error)
	Create(ctx context.Context, req models.UserRequest) (models.User, error)
	Replace(ctx context.Context, id string, req models.UserRequest) error
	Delete(ctx context.Context, id string) error
	UploadProfileImage(ctx context.Context, id string, image []byte) (models.ImageResponse, error)
	DeleteProfileImage(ctx context.Context, id string) error
}

type BlogService interface {
	Create(ctx context.Context, req models.BlogCreateRequest) (models.BlogResponse, error)
	Get(ctx context.Context, id string) (models.BlogResponse, error)
	List(ctx context.Context, page models.Page) (models.BlogPage, error)
	ListByUser(ctx context.Context, userID string, page models.Page) (models.BlogPage, error)
	Update(ctx context.Context, id string, req models.BlogUpdateRequest) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string, page models.Page) (models.BlogPage, error)
}

// CommentService manages comments. Writes check that the referenced blog
// and user exist, in that order.
type CommentService interface {
	Create(ctx context.Context, req models.CommentRequest) (models.Comment, error)
	Get(ctx context.Context, id string) (models.Comment, error)
	List(ctx context.Context, page models.Page) (models.CommentPage, error)
	ListByBlog(ctx context.Context, blogID string, page models.Page) (models.CommentPage, error)
	ListByUser(ctx context.Context, userID string, page models.Page) (models.CommentPage, error)
	Update(ctx context.Context, id string, req models.CommentRequest) error
	Delete(ctx context.Context, id string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
