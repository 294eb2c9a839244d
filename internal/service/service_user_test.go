package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lamijafatic/blog-website-api/internal/logger"
	"github.com/lamijafatic/blog-website-api/internal/mock"
	"github.com/lamijafatic/blog-website-api/internal/store"
	"github.com/lamijafatic/blog-website-api/internal/validators"
	"github.com/lamijafatic/blog-website-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserService(t *testing.T) (UserService, store.UserRepository, *mock.MockImageHost) {
	t.Helper()
	ctrl := gomock.NewController(t)
	imageHost := mock.NewMockImageHost(ctrl)
	repo := store.NewMemoryStorages().UserRepository
	return NewUserService(repo, imageHost, validators.NewRequestValidator(), logger.Nop()), repo, imageHost
}

func validUserRequest() models.UserRequest {
	return models.UserRequest{FirstName: "A", LastName: "B", Email: "a@b.com", Password: "pw", Role: "admin"}
}

func seedUsers(t *testing.T, repo store.UserRepository, n int) []models.User {
	t.Helper()
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		u, err := repo.Insert(context.Background(), models.User{FirstName: "F", LastName: "L", Email: "u@b.com", Role: models.RoleUser})
		require.NoError(t, err)
		users = append(users, u)
	}
	return users
}

// ─────────────────────────────────────────────
// Listing
// ─────────────────────────────────────────────

func TestUserList_Paging(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	users := seedUsers(t, repo, 5)

	result, err := svc.List(context.Background(), models.NewPage(2, 2))
	require.NoError(t, err)

	assert.Equal(t, int64(5), result.TotalItems)
	assert.Equal(t, int64(2), result.Page)
	assert.Equal(t, int64(2), result.PageSize)
	assert.Equal(t, int64(3), result.TotalPages)
	assert.Equal(t, users[2:4], result.Items)
}

func TestUserList_PageBeyondEnd(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	seedUsers(t, repo, 3)

	result, err := svc.List(context.Background(), models.NewPage(5, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.TotalItems)
	assert.Empty(t, result.Items)
}

func TestUserListAll(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	users := seedUsers(t, repo, 3)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, users, all)
}

func TestUserList_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	storeErr := errors.New("timeout")
	repo.EXPECT().Count(gomock.Any(), store.UserFilter{}).Return(int64(0), storeErr)

	svc := NewUserService(repo, mock.NewMockImageHost(ctrl), validators.NewRequestValidator(), logger.Nop())
	_, err := svc.List(context.Background(), models.NewPage(1, 10))
	assert.ErrorIs(t, err, storeErr)
}

// ─────────────────────────────────────────────
// Create / Replace / Delete
// ─────────────────────────────────────────────

func TestUserCreate_StoresPasswordVerbatim(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	user, err := svc.Create(context.Background(), validUserRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "pw", user.PasswordHash)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestUserCreate_Roles(t *testing.T) {
	tests := []struct {
		name     string
		role     models.Role
		wantRole models.Role
		wantErr  error
	}{
		{name: "empty defaults to user", role: "", wantRole: models.RoleUser},
		{name: "lower case", role: "user", wantRole: models.RoleUser},
		{name: "upper case", role: "ADMIN", wantRole: models.RoleAdmin},
		{name: "unknown", role: "ROOT", wantErr: validators.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestUserService(t)
			req := validUserRequest()
			req.Role = tt.role

			user, err := svc.Create(context.Background(), req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, ErrInvalidDataProvided)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, user.Role)
		})
	}
}

func TestUserReplace_KeepsProfileImage(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	existing, err := repo.Insert(context.Background(), models.User{
		Email:                   "old@b.com",
		ProfileImageURL:         "https://img/p.png",
		ProfileImageDeleteToken: "tok",
	})
	require.NoError(t, err)

	req := validUserRequest()
	req.Email = "new@b.com"
	require.NoError(t, svc.Replace(context.Background(), existing.ID, req))

	got, err := repo.FindByID(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@b.com", got.Email)
	assert.Equal(t, "pw", got.PasswordHash)
	assert.Equal(t, "https://img/p.png", got.ProfileImageURL)
	assert.Equal(t, "tok", got.ProfileImageDeleteToken)
}

func TestUserReplace_NotFound(t *testing.T) {
	svc, _, _ := newTestUserService(t)
	err := svc.Replace(context.Background(), "missing", validUserRequest())
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserDelete(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	users := seedUsers(t, repo, 1)

	require.NoError(t, svc.Delete(context.Background(), users[0].ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), users[0].ID), store.ErrUserNotFound)

	_, err := svc.Get(context.Background(), users[0].ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

// ─────────────────────────────────────────────
// Profile image
// ─────────────────────────────────────────────

func TestUploadProfileImage(t *testing.T) {
	svc, repo, imageHost := newTestUserService(t)
	existing, err := repo.Insert(context.Background(), models.User{Email: "a@b.com", ProfileImageDeleteToken: "old"})
	require.NoError(t, err)

	img := []byte{0x89, 'P', 'N', 'G'}
	imageHost.EXPECT().Upload(gomock.Any(), img).Return(models.Image{URL: "https://img/new.png", DeleteToken: "new"}, nil)

	resp, err := svc.UploadProfileImage(context.Background(), existing.ID, img)
	require.NoError(t, err)
	assert.Equal(t, "https://img/new.png", resp.ImageURL)

	got, err := repo.FindByID(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://img/new.png", got.ProfileImageURL)
	assert.Equal(t, "new", got.ProfileImageDeleteToken)
}

func TestUploadProfileImage_Errors(t *testing.T) {
	t.Run("empty image", func(t *testing.T) {
		svc, _, _ := newTestUserService(t)
		_, err := svc.UploadProfileImage(context.Background(), "any", nil)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _, _ := newTestUserService(t)
		_, err := svc.UploadProfileImage(context.Background(), "missing", []byte("x"))
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("upload fails", func(t *testing.T) {
		svc, repo, imageHost := newTestUserService(t)
		users := seedUsers(t, repo, 1)
		imageHost.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(models.Image{}, errors.New("boom"))

		_, err := svc.UploadProfileImage(context.Background(), users[0].ID, []byte("x"))
		assert.ErrorIs(t, err, ErrImageUploadFailed)

		got, err := repo.FindByID(context.Background(), users[0].ID)
		require.NoError(t, err)
		assert.Empty(t, got.ProfileImageURL)
	})
}

func TestDeleteProfileImage(t *testing.T) {
	withImage := models.User{Email: "a@b.com", ProfileImageURL: "https://img/p.png", ProfileImageDeleteToken: "tok"}

	t.Run("success clears fields", func(t *testing.T) {
		svc, repo, imageHost := newTestUserService(t)
		u, err := repo.Insert(context.Background(), withImage)
		require.NoError(t, err)
		imageHost.EXPECT().Delete(gomock.Any(), "tok").Return(true, nil)

		require.NoError(t, svc.DeleteProfileImage(context.Background(), u.ID))

		got, err := repo.FindByID(context.Background(), u.ID)
		require.NoError(t, err)
		assert.Empty(t, got.ProfileImageURL)
		assert.Empty(t, got.ProfileImageDeleteToken)
	})

	t.Run("host refuses", func(t *testing.T) {
		svc, repo, imageHost := newTestUserService(t)
		u, err := repo.Insert(context.Background(), withImage)
		require.NoError(t, err)
		imageHost.EXPECT().Delete(gomock.Any(), "tok").Return(false, nil)

		assert.ErrorIs(t, svc.DeleteProfileImage(context.Background(), u.ID), ErrImageDeleteFailed)

		got, err := repo.FindByID(context.Background(), u.ID)
		require.NoError(t, err)
		assert.Equal(t, "tok", got.ProfileImageDeleteToken)
	})

	t.Run("host error", func(t *testing.T) {
		svc, repo, imageHost := newTestUserService(t)
		u, err := repo.Insert(context.Background(), withImage)
		require.NoError(t, err)
		imageHost.EXPECT().Delete(gomock.Any(), "tok").Return(false, errors.New("unreachable"))

		assert.ErrorIs(t, svc.DeleteProfileImage(context.Background(), u.ID), ErrImageDeleteFailed)
	})

	t.Run("no image", func(t *testing.T) {
		svc, repo, _ := newTestUserService(t)
		users := seedUsers(t, repo, 1)

		assert.ErrorIs(t, svc.DeleteProfileImage(context.Background(), users[0].ID), ErrNoImageToDelete)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _, _ := newTestUserService(t)
		assert.ErrorIs(t, svc.DeleteProfileImage(context.Background(), "missing"), store.ErrUserNotFound)
	})
}
