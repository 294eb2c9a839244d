package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lamijafatic/blog-website-api/internal/adapter"
	"github.com/lamijafatic/blog-website-api/internal/logger"
	"github.com/lamijafatic/blog-website-api/internal/store"
	"github.com/lamijafatic/blog-website-api/internal/validators"
	"github.com/lamijafatic/blog-website-api/models"
)

// blogService is the concrete implementation of BlogService. Blog reads
// are joined with their author's name through userRepository.
type blogService struct {
	blogRepository store.BlogRepository
	userRepository store.UserRepository
	imageHost      adapter.ImageHost
	validator      validators.Validator

	// now stamps dateCreated.
	now func() time.Time

	logger *logger.Logger
}

func NewBlogService(blogRepository store.BlogRepository, userRepository store.UserRepository, imageHost adapter.ImageHost, validator validators.Validator, logger *logger.Logger) BlogService {
	return &blogService{
		blogRepository: blogRepository,
		userRepository: userRepository,
		imageHost:      imageHost,
		validator:      validator,
		now:            utcNow,
		logger:         logger,
	}
}

// Create checks that the author exists, hosts the cover image and then
// stores the blog. Nothing is stored when the upload fails.
func (s *blogService) Create(ctx context.Context, req models.BlogCreateRequest) (models.BlogResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid blog data provided")
		return models.BlogResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	author, err := s.userRepository.FindByID(ctx, req.UserID)
	if err != nil {
		return models.BlogResponse{}, err
	}

	hosted, err := s.imageHost.Upload(ctx, req.Image)
	if err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("blog image upload failed")
		return models.BlogResponse{}, fmt.Errorf("%w: %w", ErrImageUploadFailed, err)
	}

	blog, err := s.blogRepository.Insert(ctx, models.Blog{
		Title:            req.Title,
		Description:      req.Description,
		DateCreated:      s.now(),
		ImageURL:         hosted.URL,
		ImageDeleteToken: hosted.DeleteToken,
		UserID:           req.UserID,
	})
	if err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("blog creation ended with error")
		return models.BlogResponse{}, fmt.Errorf("blog creation ended with error: %w", err)
	}

	return models.NewBlogResponse(blog, &author), nil
}

func (s *blogService) Get(ctx context.Context, id string) (models.BlogResponse, error) {
	blog, err := s.blogRepository.FindByID(ctx, id)
	if err != nil {
		return models.BlogResponse{}, err
	}

	responses, err := s.withAuthors(ctx, []models.Blog{blog})
	if err != nil {
		return models.BlogResponse{}, err
	}
	return responses[0], nil
}

func (s *blogService) List(ctx context.Context, page models.Page) (models.BlogPage, error) {
	return s.page(ctx, store.BlogFilter{}, page)
}

// ListByUser returns ErrNoBlogsForUser when the requested page is empty.
// The user itself is not looked up.
func (s *blogService) ListByUser(ctx context.Context, userID string, page models.Page) (models.BlogPage, error) {
	result, err := s.page(ctx, store.BlogFilter{UserIDs: []string{userID}}, page)
	if err != nil {
		return models.BlogPage{}, err
	}
	if len(result.Blogs) == 0 {
		return models.BlogPage{}, ErrNoBlogsForUser
	}
	return result, nil
}

// Update applies a partial update. When a new image is supplied the old
// one is deleted from the host first; if the host refuses, the blog is
// left untouched.
func (s *blogService) Update(ctx context.Context, id string, req models.BlogUpdateRequest) error {
	log := logger.FromContext(ctx)

	blog, err := s.blogRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if req.HasImage() {
		if blog.ImageDeleteToken != "" {
			if err = deleteHostedImage(ctx, s.imageHost, blog.ImageDeleteToken); err != nil {
				log.Err(err).Str("id", id).Msg("old blog image deletion failed")
				return err
			}
		}

		hosted, err := s.imageHost.Upload(ctx, req.Image)
		if err != nil {
			log.Err(err).Str("id", id).Msg("blog image upload failed")
			return fmt.Errorf("%w: %w", ErrImageUploadFailed, err)
		}
		blog.ImageURL = hosted.URL
		blog.ImageDeleteToken = hosted.DeleteToken
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Description != nil {
		blog.Description = *req.Description
	}

	return s.blogRepository.Replace(ctx, blog)
}

// Delete removes the hosted image, then the blog. The blog stays when the
// host refuses the image deletion.
func (s *blogService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	blog, err := s.blogRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if blog.ImageDeleteToken != "" {
		if err = deleteHostedImage(ctx, s.imageHost, blog.ImageDeleteToken); err != nil {
			log.Err(err).Str("id", id).Msg("blog image deletion failed")
			return err
		}
	}

	return s.blogRepository.Delete(ctx, id)
}

// Search pages through blogs matching query and appends every blog written
// by a user whose name matches it. Blogs already on the page are not
// repeated; totalCount adds the appended blogs to the direct match count.
func (s *blogService) Search(ctx context.Context, query string, page models.Page) (models.BlogPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.BlogPage{}, fmt.Errorf("%w: empty search query", ErrInvalidDataProvided)
	}

	direct := store.BlogFilter{Text: query}
	total, err := s.blogRepository.Count(ctx, direct)
	if err != nil {
		return models.BlogPage{}, fmt.Errorf("counting blogs failed: %w", err)
	}
	blogs, err := s.blogRepository.Find(ctx, direct, &page)
	if err != nil {
		return models.BlogPage{}, fmt.Errorf("searching blogs failed: %w", err)
	}

	authors, err := s.userRepository.Find(ctx, store.UserFilter{Text: query}, nil)
	if err != nil {
		return models.BlogPage{}, fmt.Errorf("searching users failed: %w", err)
	}

	if len(authors) > 0 {
		extra, err := s.blogRepository.Find(ctx, store.BlogFilter{
			UserIDs:    userIDs(authors),
			ExcludeIDs: blogIDs(blogs),
		}, nil)
		if err != nil {
			return models.BlogPage{}, fmt.Errorf("searching blogs by author failed: %w", err)
		}
		blogs = append(blogs, extra...)
		total += int64(len(extra))
	}

	responses, err := s.withAuthors(ctx, blogs)
	if err != nil {
		return models.BlogPage{}, err
	}

	return models.BlogPage{TotalCount: total, Page: page.Number, PageSize: page.Size, Blogs: responses}, nil
}

func (s *blogService) page(ctx context.Context, filter store.BlogFilter, page models.Page) (models.BlogPage, error) {
	total, err := s.blogRepository.Count(ctx, filter)
	if err != nil {
		return models.BlogPage{}, fmt.Errorf("counting blogs failed: %w", err)
	}

	blogs, err := s.blogRepository.Find(ctx, filter, &page)
	if err != nil {
		return models.BlogPage{}, fmt.Errorf("listing blogs failed: %w", err)
	}

	responses, err := s.withAuthors(ctx, blogs)
	if err != nil {
		return models.BlogPage{}, err
	}

	return models.BlogPage{TotalCount: total, Page: page.Number, PageSize: page.Size, Blogs: responses}, nil
}

// withAuthors resolves every distinct author of blogs in a single lookup
// and joins their names in. Missing authors leave the names null.
func (s *blogService) withAuthors(ctx context.Context, blogs []models.Blog) ([]models.BlogResponse, error) {
	responses := make([]models.BlogResponse, 0, len(blogs))
	if len(blogs) == 0 {
		return responses, nil
	}

	ids := make([]string, 0, len(blogs))
	seen := make(map[string]bool, len(blogs))
	for _, b := range blogs {
		if !seen[b.UserID] {
			seen[b.UserID] = true
			ids = append(ids, b.UserID)
		}
	}

	users, err := s.userRepository.Find(ctx, store.UserFilter{IDs: ids}, nil)
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		return nil, fmt.Errorf("author lookup failed: %w", err)
	}

	byID := make(map[string]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	for _, b := range blogs {
		responses = append(responses, models.NewBlogResponse(b, byID[b.UserID]))
	}
	return responses, nil
}

func userIDs(users []models.User) []string {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

func blogIDs(blogs []models.Blog) []string {
	ids := make([]string, 0, len(blogs))
	for _, b := range blogs {
		ids = append(ids, b.ID)
	}
	return ids
}
