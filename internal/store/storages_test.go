package store

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/lamijafatic/blog-website-api/internal/config"
	"github.com/lamijafatic/blog-website-api/internal/logger"
	"github.com/lamijafatic/blog-website-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRepositories runs the repository contract shared by every backend.
func testRepositories(t *testing.T, s *Storages) {
	t.Run("users", func(t *testing.T) { testUserRepository(t, s.UserRepository) })
	t.Run("blogs", func(t *testing.T) { testBlogRepository(t, s.BlogRepository) })
	t.Run("comments", func(t *testing.T) { testCommentRepository(t, s.CommentRepository) })
}

func testUserRepository(t *testing.T, repo UserRepository) {
	ctx := context.Background()

	ada, err := repo.Insert(ctx, models.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", PasswordHash: "h1", Role: models.RoleAdmin})
	require.NoError(t, err)
	require.NotEmpty(t, ada.ID)
	alan, err := repo.Insert(ctx, models.User{FirstName: "Alan", LastName: "Turing", Email: "alan@example.com", PasswordHash: "h2", Role: models.RoleUser})
	require.NoError(t, err)
	grace, err := repo.Insert(ctx, models.User{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com", Role: models.RoleUser})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, ada, got)

	byEmail, err := repo.FindByEmail(ctx, "alan@example.com")
	require.NoError(t, err)
	assert.Equal(t, alan.ID, byEmail.ID)

	_, err = repo.FindByEmail(ctx, "ALAN@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	all, err := repo.Find(ctx, UserFilter{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{ada.ID, alan.ID, grace.ID}, userIDs(all))

	page, err := repo.Find(ctx, UserFilter{}, &models.Page{Number: 2, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{grace.ID}, userIDs(page))

	beyond, err := repo.Find(ctx, UserFilter{}, &models.Page{Number: 5, Size: 2})
	require.NoError(t, err)
	assert.Empty(t, beyond)

	byText, err := repo.Find(ctx, UserFilter{Text: "turing"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{alan.ID}, userIDs(byText))

	byIDs, err := repo.Find(ctx, UserFilter{IDs: []string{grace.ID, "not-an-id"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{grace.ID}, userIDs(byIDs))

	n, err := repo.Count(ctx, UserFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	alan.LastName = "M. Turing"
	alan.ProfileImageURL = "http://img/a.png"
	alan.ProfileImageDeleteToken = "del"
	require.NoError(t, repo.Replace(ctx, alan))
	got, err = repo.FindByID(ctx, alan.ID)
	require.NoError(t, err)
	assert.Equal(t, alan, got)

	assert.ErrorIs(t, repo.Replace(ctx, models.User{ID: "ffffffffffffffffffffffff"}), ErrUserNotFound)
	assert.ErrorIs(t, repo.Replace(ctx, models.User{ID: "bad"}), ErrUserNotFound)

	require.NoError(t, repo.Delete(ctx, grace.ID))
	assert.ErrorIs(t, repo.Delete(ctx, grace.ID), ErrUserNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "bad"), ErrUserNotFound)

	_, err = repo.FindByID(ctx, grace.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = repo.FindByID(ctx, "bad")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func testBlogRepository(t *testing.T, repo BlogRepository) {
	ctx := context.Background()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	first, err := repo.Insert(ctx, models.Blog{Title: "Gopher generics", Description: "type parameters", DateCreated: created, ImageURL: "u1", ImageDeleteToken: "d1", UserID: "u-1"})
	require.NoError(t, err)
	second, err := repo.Insert(ctx, models.Blog{Title: "Mongo tips", Description: "indexes and text search", DateCreated: created, ImageURL: "u2", ImageDeleteToken: "d2", UserID: "u-2"})
	require.NoError(t, err)
	third, err := repo.Insert(ctx, models.Blog{Title: "More gopher", Description: "channels", DateCreated: created, ImageURL: "u3", ImageDeleteToken: "d3", UserID: "u-1"})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	byUser, err := repo.Find(ctx, BlogFilter{UserIDs: []string{"u-1"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID, third.ID}, blogIDs(byUser))

	excluded, err := repo.Find(ctx, BlogFilter{UserIDs: []string{"u-1"}, ExcludeIDs: []string{first.ID}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{third.ID}, blogIDs(excluded))

	byText, err := repo.Find(ctx, BlogFilter{Text: "gopher"}, &models.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID, third.ID}, blogIDs(byText))

	n, err := repo.Count(ctx, BlogFilter{Text: "search"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	second.Title = "Mongo tricks"
	require.NoError(t, repo.Replace(ctx, second))
	got, err = repo.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mongo tricks", got.Title)

	require.NoError(t, repo.Delete(ctx, second.ID))
	_, err = repo.FindByID(ctx, second.ID)
	assert.ErrorIs(t, err, ErrBlogNotFound)
	assert.ErrorIs(t, repo.Replace(ctx, second), ErrBlogNotFound)
}

func testCommentRepository(t *testing.T, repo CommentRepository) {
	ctx := context.Background()
	posted := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

	c1, err := repo.Insert(ctx, models.Comment{BlogID: "b-1", UserID: "u-1", Content: "first", DatePosted: posted})
	require.NoError(t, err)
	c2, err := repo.Insert(ctx, models.Comment{BlogID: "b-1", UserID: "u-2", Content: "second", DatePosted: posted})
	require.NoError(t, err)
	c3, err := repo.Insert(ctx, models.Comment{BlogID: "b-2", UserID: "u-1", Content: "third", DatePosted: posted})
	require.NoError(t, err)

	byBlog, err := repo.Find(ctx, CommentFilter{BlogID: "b-1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{c1.ID, c2.ID}, commentIDs(byBlog))

	byUser, err := repo.Find(ctx, CommentFilter{UserID: "u-1"}, &models.Page{Number: 1, Size: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{c1.ID}, commentIDs(byUser))

	n, err := repo.Count(ctx, CommentFilter{UserID: "u-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	c3.Content = "edited"
	require.NoError(t, repo.Replace(ctx, c3))
	got, err := repo.FindByID(ctx, c3.ID)
	require.NoError(t, err)
	assert.Equal(t, c3, got)

	require.NoError(t, repo.Delete(ctx, c1.ID))
	assert.ErrorIs(t, repo.Delete(ctx, c1.ID), ErrCommentNotFound)
	_, err = repo.FindByID(ctx, "bad")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

// ─── memory backend ─────────────────────────────────────────────────────────

func TestMemoryStorages(t *testing.T) {
	testRepositories(t, NewMemoryStorages())
}

func TestNewStorages_Memory(t *testing.T) {
	s, err := NewStorages(context.Background(), config.DB{URI: "memory", Name: "test"}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s.UserRepository)
	assert.NoError(t, s.Close(context.Background()))
}

func TestMemoryUserRepository_EmptyEmail(t *testing.T) {
	repo := NewMemoryStorages().UserRepository
	_, err := repo.Insert(context.Background(), models.User{FirstName: "No", LastName: "Email"})
	require.NoError(t, err)

	_, err = repo.FindByEmail(context.Background(), "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestTextMatch(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   bool
	}{
		{name: "case insensitive", query: "GO", fields: []string{"Learning go fast"}, want: true},
		{name: "any term", query: "python rust", fields: []string{"Rust in production"}, want: true},
		{name: "whole words only", query: "go", fields: []string{"good gopher"}, want: false},
		{name: "punctuation", query: "tips", fields: []string{"Mongo: tips, tricks"}, want: true},
		{name: "second field", query: "hopper", fields: []string{"Grace", "Hopper"}, want: true},
		{name: "no terms", query: "  ", fields: []string{"anything"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textMatch(tt.query, tt.fields...))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, items, paginate(items, nil))
	assert.Equal(t, []int{1, 2}, paginate(items, &models.Page{Number: 1, Size: 2}))
	assert.Equal(t, []int{5}, paginate(items, &models.Page{Number: 3, Size: 2}))
	assert.Empty(t, paginate(items, &models.Page{Number: 4, Size: 2}))

	// Sizes near the int64 limit must neither wrap nor panic.
	assert.Equal(t, items, paginate(items, &models.Page{Number: 1, Size: math.MaxInt64}))
	assert.Equal(t, []int{4, 5}, paginate(items, &models.Page{Number: 2, Size: 3}))
	assert.Empty(t, paginate(items, &models.Page{Number: 3, Size: 1 << 62}))
	assert.Empty(t, paginate(items, &models.Page{Number: 2, Size: math.MaxInt64}))
}

// Helpers

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

func commentIDs(comments []models.Comment) []string {
	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	return ids
}
