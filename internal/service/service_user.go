package service

import (
	"context"
	"fmt"

	"github.com/lamijafatic/blog-website-api/internal/adapter"
	"github.com/lamijafatic/blog-website-api/internal/logger"
	"github.com/lamijafatic/blog-website-api/internal/store"
	"github.com/lamijafatic/blog-website-api/internal/validators"
	"github.com/lamijafatic/blog-website-api/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	imageHost      adapter.ImageHost
	validator      validators.Validator
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, imageHost adapter.ImageHost, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		imageHost:      imageHost,
		validator:      validator,
		logger:         logger,
	}
}

func (s *userService) List(ctx context.Context, page models.Page) (models.UserPage, error) {
	total, err := s.userRepository.Count(ctx, store.UserFilter{})
	if err != nil {
		return models.UserPage{}, fmt.Errorf("counting users failed: %w", err)
	}

	users, err := s.userRepository.Find(ctx, store.UserFilter{}, &page)
	if err != nil {
		return models.UserPage{}, fmt.Errorf("listing users failed: %w", err)
	}

	return models.UserPage{
		TotalItems: total,
		Page:       page.Number,
		PageSize:   page.Size,
		TotalPages: models.TotalPages(total, page.Size),
		Items:      users,
	}, nil
}

func (s *userService) ListAll(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.Find(ctx, store.UserFilter{}, nil)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, id string) (models.User, error) {
	return s.userRepository.FindByID(ctx, id)
}

// Create inserts an account as supplied by an administrator. The password
// is stored exactly as given; only registration hashes it.
func (s *userService) Create(ctx context.Context, req models.UserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := s.userRepository.Insert(ctx, newUserFromRequest(req))
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Replace overwrites the client-visible fields of user id. The profile
// image fields are kept; they change only through the image operations.
func (s *userService) Replace(ctx context.Context, id string, req models.UserRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("id", id).Msg("invalid user data provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	current, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	user := newUserFromRequest(req)
	user.ID = current.ID
	user.ProfileImageURL = current.ProfileImageURL
	user.ProfileImageDeleteToken = current.ProfileImageDeleteToken

	return s.userRepository.Replace(ctx, user)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	return s.userRepository.Delete(ctx, id)
}

// UploadProfileImage hosts image and attaches it to user id. A previously
// hosted profile image is overwritten without being deleted from the host.
func (s *userService) UploadProfileImage(ctx context.Context, id string, image []byte) (models.ImageResponse, error) {
	log := logger.FromContext(ctx)

	if len(image) == 0 {
		return models.ImageResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyImage)
	}

	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return models.ImageResponse{}, err
	}

	hosted, err := s.imageHost.Upload(ctx, image)
	if err != nil {
		log.Err(err).Str("id", id).Msg("profile image upload failed")
		return models.ImageResponse{}, fmt.Errorf("%w: %w", ErrImageUploadFailed, err)
	}

	user.ProfileImageURL = hosted.URL
	user.ProfileImageDeleteToken = hosted.DeleteToken
	if err = s.userRepository.Replace(ctx, user); err != nil {
		return models.ImageResponse{}, err
	}

	return models.ImageResponse{ImageURL: hosted.URL}, nil
}

// DeleteProfileImage removes the hosted profile image and clears both
// image fields. Nothing is changed when the host refuses the deletion.
func (s *userService) DeleteProfileImage(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.HasProfileImage() {
		return ErrNoImageToDelete
	}

	if err = deleteHostedImage(ctx, s.imageHost, user.ProfileImageDeleteToken); err != nil {
		log.Err(err).Str("id", id).Msg("profile image deletion failed")
		return err
	}

	user.ProfileImageURL = ""
	user.ProfileImageDeleteToken = ""
	return s.userRepository.Replace(ctx, user)
}

// deleteHostedImage reports ErrImageDeleteFailed unless the host confirmed
// the deletion.
func deleteHostedImage(ctx context.Context, imageHost adapter.ImageHost, token string) error {
	ok, err := imageHost.Delete(ctx, token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrImageDeleteFailed, err)
	}
	if !ok {
		return ErrImageDeleteFailed
	}
	return nil
}

func newUserFromRequest(req models.UserRequest) models.User {
	role, err := models.ParseRole(string(req.Role))
	if err != nil {
		role = models.RoleUser
	}

	return models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: req.Password,
		Role:         role,
	}
}
