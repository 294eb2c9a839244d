package service

import (
	"time"

	"github.com/lamijafatic/blog-website-api/internal/adapter"
	"github.com/lamijafatic/blog-website-api/internal/config"
	"github.com/lamijafatic/blog-website-api/internal/logger"
	"github.com/lamijafatic/blog-website-api/internal/store"
	"github.com/lamijafatic/blog-website-api/internal/validators"
	"github.com/lamijafatic/blog-website-api/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	BlogService    BlogService
	CommentService CommentService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, imageHost adapter.ImageHost, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, imageHost, validator, logger),
		BlogService:    NewBlogService(storages.BlogRepository, storages.UserRepository, imageHost, validator, logger),
		CommentService: NewCommentService(storages.CommentRepository, storages.BlogRepository, storages.UserRepository, validator, logger),
		AppInfoService: NewAppInfoService(cfg.App, buildInfo, logger),
	}
}

// utcNow is the default service clock. Store round trips keep millisecond
// precision only, so timestamps are truncated up front.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
