package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lamijafatic/blog-website-api/internal/logger"
	"github.com/lamijafatic/blog-website-api/internal/store"
	"github.com/lamijafatic/blog-website-api/internal/validators"
	"github.com/lamijafatic/blog-website-api/models"
)

// commentService is the concrete implementation of CommentService.
// Mutations check that the referenced blog and user exist at write time.
type commentService struct {
	commentRepository store.CommentRepository
	blogRepository    store.BlogRepository
	userRepository    store.UserRepository
	validator         validators.Validator

	// now stamps datePosted.
	now func() time.Time

	logger *logger.Logger
}

func NewCommentService(commentRepository store.CommentRepository, blogRepository store.BlogRepository, userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		blogRepository:    blogRepository,
		userRepository:    userRepository,
		validator:         validator,
		now:               utcNow,
		logger:            logger,
	}
}

func (s *commentService) Create(ctx context.Context, req models.CommentRequest) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if err := s.checkRequest(ctx, req); err != nil {
		return models.Comment{}, err
	}

	comment, err := s.commentRepository.Insert(ctx, models.Comment{
		BlogID:     req.BlogID,
		UserID:     req.UserID,
		Content:    req.Content,
		DatePosted: s.now(),
	})
	if err != nil {
		log.Err(err).Str("blog_id", req.BlogID).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return comment, nil
}

func (s *commentService) Get(ctx context.Context, id string) (models.Comment, error) {
	return s.commentRepository.FindByID(ctx, id)
}

func (s *commentService) List(ctx context.Context, page models.Page) (models.CommentPage, error) {
	return s.page(ctx, store.CommentFilter{}, page)
}

// ListByBlog does not check that the blog exists.
func (s *commentService) ListByBlog(ctx context.Context, blogID string, page models.Page) (models.CommentPage, error) {
	return s.page(ctx, store.CommentFilter{BlogID: blogID}, page)
}

// ListByUser fails with store.ErrUserNotFound for an unknown user.
func (s *commentService) ListByUser(ctx context.Context, userID string, page models.Page) (models.CommentPage, error) {
	if _, err := s.userRepository.FindByID(ctx, userID); err != nil {
		return models.CommentPage{}, err
	}
	return s.page(ctx, store.CommentFilter{UserID: userID}, page)
}

// Update re-checks both references, even when unchanged, and keeps the
// stored datePosted.
func (s *commentService) Update(ctx context.Context, id string, req models.CommentRequest) error {
	current, err := s.commentRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err = s.checkRequest(ctx, req); err != nil {
		return err
	}

	return s.commentRepository.Replace(ctx, models.Comment{
		ID:         current.ID,
		BlogID:     req.BlogID,
		UserID:     req.UserID,
		Content:    req.Content,
		DatePosted: current.DatePosted,
	})
}

func (s *commentService) Delete(ctx context.Context, id string) error {
	return s.commentRepository.Delete(ctx, id)
}

// checkRequest validates req and resolves its blog, then its user.
func (s *commentService) checkRequest(ctx context.Context, req models.CommentRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid comment data provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := s.blogRepository.FindByID(ctx, req.BlogID); err != nil {
		return err
	}
	if _, err := s.userRepository.FindByID(ctx, req.UserID); err != nil {
		return err
	}
	return nil
}

func (s *commentService) page(ctx context.Context, filter store.CommentFilter, page models.Page) (models.CommentPage, error) {
	total, err := s.commentRepository.Count(ctx, filter)
	if err != nil {
		return models.CommentPage{}, fmt.Errorf("counting comments failed: %w", err)
	}

	comments, err := s.commentRepository.Find(ctx, filter, &page)
	if err != nil {
		return models.CommentPage{}, fmt.Errorf("listing comments failed: %w", err)
	}

	return models.CommentPage{TotalCount: total, Page: page.Number, PageSize: page.Size, Comments: comments}, nil
}
