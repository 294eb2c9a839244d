package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lamijafatic/blog-website-api/internal/config"
	"github.com/lamijafatic/blog-website-api/internal/logger"
	"github.com/lamijafatic/blog-website-api/internal/mock"
	"github.com/lamijafatic/blog-website-api/internal/store"
	"github.com/lamijafatic/blog-website-api/internal/utils"
	"github.com/lamijafatic/blog-website-api/internal/validators"
	"github.com/lamijafatic/blog-website-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAppConfig = config.App{TokenSignKey: "sign-key", TokenIssuer: "blog-test", TokenDuration: 24 * time.Hour}

func newTestAuthService(repo store.UserRepository, now time.Time) *authService {
	svc := NewAuthService(repo, validators.NewRequestValidator(), testAppConfig, logger.Nop()).(*authService)
	svc.now = func() time.Time { return now }
	return svc
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{FirstName: "A", LastName: "B", Email: "a@b.com", Password: "pw"}
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	repo := store.NewMemoryStorages().UserRepository
	svc := newTestAuthService(repo, time.Now())

	user, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "pw", user.PasswordHash)
	assert.True(t, utils.ComparePassword(user.PasswordHash, "pw"))

	stored, err := repo.FindByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, user, stored)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := store.NewMemoryStorages().UserRepository
	svc := newTestAuthService(repo, time.Now())

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestRegister_EmailMatchIsCaseSensitive(t *testing.T) {
	svc := newTestAuthService(store.NewMemoryStorages().UserRepository, time.Now())

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	upper := validRegisterRequest()
	upper.Email = "A@B.com"
	_, err = svc.Register(context.Background(), upper)
	assert.NoError(t, err)
}

func TestRegister_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := newTestAuthService(repo, time.Now())

	req := validRegisterRequest()
	req.Email = "not-an-email"

	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)
}

func TestRegister_StoreErrors(t *testing.T) {
	storeErr := errors.New("connection reset")

	t.Run("lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "a@b.com").Return(models.User{}, storeErr)

		_, err := newTestAuthService(repo, time.Now()).Register(context.Background(), validRegisterRequest())
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserRepository(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "a@b.com").Return(models.User{}, store.ErrUserNotFound)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(models.User{}, storeErr)

		_, err := newTestAuthService(repo, time.Now()).Register(context.Background(), validRegisterRequest())
		assert.ErrorIs(t, err, storeErr)
	})
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	repo := store.NewMemoryStorages().UserRepository
	svc := newTestAuthService(repo, now)

	registered, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     models.LoginRequest
		wantErr error
	}{
		{name: "valid credentials", req: models.LoginRequest{Email: "a@b.com", Password: "pw"}},
		{name: "wrong password", req: models.LoginRequest{Email: "a@b.com", Password: "PW"}, wantErr: ErrInvalidCredentials},
		{name: "unknown email", req: models.LoginRequest{Email: "x@b.com", Password: "pw"}, wantErr: ErrInvalidCredentials},
		{name: "missing password", req: models.LoginRequest{Email: "a@b.com"}, wantErr: ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.Login(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token.SignedString)
			assert.Equal(t, registered.ID, token.UserID())
			assert.Equal(t, "a@b.com", token.Claims.Email)
			assert.Equal(t, models.RoleUser, token.Role())
			assert.Equal(t, "blog-test", token.Claims.Issuer)
			assert.Equal(t, now.Add(24*time.Hour), token.Claims.ExpiresAt.Time)
		})
	}
}

// TestLogin_AdminCreatedUser covers accounts whose password was stored
// verbatim: bcrypt verification fails and the login is refused.
func TestLogin_AdminCreatedUser(t *testing.T) {
	repo := store.NewMemoryStorages().UserRepository
	_, err := repo.Insert(context.Background(), models.User{Email: "admin@b.com", PasswordHash: "plain", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = newTestAuthService(repo, time.Now()).Login(context.Background(), models.LoginRequest{Email: "admin@b.com", Password: "plain"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// ParseToken
// ─────────────────────────────────────────────

func TestParseToken(t *testing.T) {
	issuedAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	user := models.User{ID: "abc", Email: "a@b.com", Role: models.RoleAdmin}

	token, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, user, testAppConfig.TokenDuration, testAppConfig.TokenSignKey, issuedAt)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWTToken("someone-else", user, time.Hour, testAppConfig.TokenSignKey, issuedAt)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		now     time.Time
		wantErr error
	}{
		{name: "valid", token: token.SignedString, now: issuedAt.Add(time.Hour)},
		{name: "expired", token: token.SignedString, now: issuedAt.Add(25 * time.Hour), wantErr: ErrTokenIsExpired},
		{name: "wrong issuer", token: foreign.SignedString, now: issuedAt, wantErr: ErrTokenIsExpiredOrInvalid},
		{name: "garbage", token: "abc.def.ghi", now: issuedAt, wantErr: ErrTokenIsExpiredOrInvalid},
		{name: "empty", token: "", now: issuedAt, wantErr: ErrTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(nil, tt.now)

			parsed, err := svc.ParseToken(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "abc", parsed.UserID())
			assert.Equal(t, models.RoleAdmin, parsed.Role())
		})
	}
}
