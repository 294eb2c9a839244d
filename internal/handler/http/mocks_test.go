package http

import (
	"context"

	"github.com/lamijafatic/blog-website-api/internal/logger"
	"github.com/lamijafatic/blog-website-api/internal/service"
	"github.com/lamijafatic/blog-website-api/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// Each mock implements one service interface. Method fields are set per
// test case; calling an unset field panics, which Recoverer turns into 500
// in router tests and which fails handler unit tests loudly.

type mockAuthService struct {
	registerFn   func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn      func(ctx context.Context, req models.LoginRequest) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockUserService struct {
	listFn               func(ctx context.Context, page models.Page) (models.UserPage, error)
	listAllFn            func(ctx context.Context) ([]models.User, error)
	getFn                func(ctx context.Context, id string) (models.User, error)
	createFn             func(ctx context.Context, req models.UserRequest) (models.User, error)
	replaceFn            func(ctx context.Context, id string, req models.UserRequest) error
	deleteFn             func(ctx context.Context, id string) error
	uploadProfileImageFn func(ctx context.Context, id string, image []byte) (models.ImageResponse, error)
	deleteProfileImageFn func(ctx context.Context, id string) error
}

func (m *mockUserService) List(ctx context.Context, page models.Page) (models.UserPage, error) {
	return m.listFn(ctx, page)
}

func (m *mockUserService) ListAll(ctx context.Context) ([]models.User, error) {
	return m.listAllFn(ctx)
}

func (m *mockUserService) Get(ctx context.Context, id string) (models.User, error) {
	return m.getFn(ctx, id)
}

func (m *mockUserService) Create(ctx context.Context, req models.UserRequest) (models.User, error) {
	return m.createFn(ctx, req)
}

func (m *mockUserService) Replace(ctx context.Context, id string, req models.UserRequest) error {
	return m.replaceFn(ctx, id, req)
}

func (m *mockUserService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockUserService) UploadProfileImage(ctx context.Context, id string, image []byte) (models.ImageResponse, error) {
	return m.uploadProfileImageFn(ctx, id, image)
}

func (m *mockUserService) DeleteProfileImage(ctx context.Context, id string) error {
	return m.deleteProfileImageFn(ctx, id)
}

type mockBlogService struct {
	createFn     func(ctx context.Context, req models.BlogCreateRequest) (models.BlogResponse, error)
	getFn        func(ctx context.Context, id string) (models.BlogResponse, error)
	listFn       func(ctx context.Context, page models.Page) (models.BlogPage, error)
	listByUserFn func(ctx context.Context, userID string, page models.Page) (models.BlogPage, error)
	updateFn     func(ctx context.Context, id string, req models.BlogUpdateRequest) error
	deleteFn     func(ctx context.Context, id string) error
	searchFn     func(ctx context.Context, query string, page models.Page) (models.BlogPage, error)
}

func (m *mockBlogService) Create(ctx context.Context, req models.BlogCreateRequest) (models.BlogResponse, error) {
	return m.createFn(ctx, req)
}

func (m *mockBlogService) Get(ctx context.Context, id string) (models.BlogResponse, error) {
	return m.getFn(ctx, id)
}

func (m *mockBlogService) List(ctx context.Context, page models.Page) (models.BlogPage, error) {
	return m.listFn(ctx, page)
}

func (m *mockBlogService) ListByUser(ctx context.Context, userID string, page models.Page) (models.BlogPage, error) {
	return m.listByUserFn(ctx, userID, page)
}

func (m *mockBlogService) Update(ctx context.Context, id string, req models.BlogUpdateRequest) error {
	return m.updateFn(ctx, id, req)
}

func (m *mockBlogService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockBlogService) Search(ctx context.Context, query string, page models.Page) (models.BlogPage, error) {
	return m.searchFn(ctx, query, page)
}

type mockCommentService struct {
	createFn     func(ctx context.Context, req models.CommentRequest) (models.Comment, error)
	getFn        func(ctx context.Context, id string) (models.Comment, error)
	listFn       func(ctx context.Context, page models.Page) (models.CommentPage, error)
	listByBlogFn func(ctx context.Context, blogID string, page models.Page) (models.CommentPage, error)
	listByUserFn func(ctx context.Context, userID string, page models.Page) (models.CommentPage, error)
	updateFn     func(ctx context.Context, id string, req models.CommentRequest) error
	deleteFn     func(ctx context.Context, id string) error
}

func (m *mockCommentService) Create(ctx context.Context, req models.CommentRequest) (models.Comment, error) {
	return m.createFn(ctx, req)
}

func (m *mockCommentService) Get(ctx context.Context, id string) (models.Comment, error) {
	return m.getFn(ctx, id)
}

func (m *mockCommentService) List(ctx context.Context, page models.Page) (models.CommentPage, error) {
	return m.listFn(ctx, page)
}

func (m *mockCommentService) ListByBlog(ctx context.Context, blogID string, page models.Page) (models.CommentPage, error) {
	return m.listByBlogFn(ctx, blogID, page)
}

func (m *mockCommentService) ListByUser(ctx context.Context, userID string, page models.Page) (models.CommentPage, error) {
	return m.listByUserFn(ctx, userID, page)
}

func (m *mockCommentService) Update(ctx context.Context, id string, req models.CommentRequest) error {
	return m.updateFn(ctx, id, req)
}

func (m *mockCommentService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over svcs with default server settings.
func newTestHandler(svcs *service.Services) *Handler {
	return &Handler{
		services:      svcs,
		maxUploadSize: defaultMaxUploadSize,
		logger:        logger.Nop(),
	}
}

// tokenFor returns a parsed token of the given user and role.
func tokenFor(userID string, role models.Role) models.Token {
	var token models.Token
	token.Claims.Subject = userID
	token.Claims.Role = role
	token.SignedString = "signed-" + userID
	return token
}

// tokenParser maps raw bearer strings to tokens; unknown strings are invalid.
func tokenParser(tokens map[string]models.Token) func(context.Context, string) (models.Token, error) {
	return func(_ context.Context, s string) (models.Token, error) {
		token, ok := tokens[s]
		if !ok {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return token, nil
	}
}
