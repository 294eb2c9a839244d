package store

import (
	"context"
	"slices"
	"strings"
	"sync"
	"unicode"

	"github.com/lamijafatic/blog-website-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewMemoryStorages returns repositories kept in process memory. They honor
// the same contract as the MongoDB ones and are safe for concurrent use.
func NewMemoryStorages() *Storages {
	return &Storages{
		UserRepository:    &memoryUserRepository{table: newTable[models.User]()},
		BlogRepository:    &memoryBlogRepository{table: newTable[models.Blog]()},
		CommentRepository: &memoryCommentRepository{table: newTable[models.Comment]()},
	}
}

// table is an insertion-ordered map guarded by a RWMutex.
type table[T any] struct {
	mu   sync.RWMutex
	ids  []string
	rows map[string]T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) insert(row func(id string) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := primitive.NewObjectID().Hex()
	v := row(id)
	t.ids = append(t.ids, id)
	t.rows[id] = v
	return v
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) replace(id string, v T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = v
	return true
}

func (t *table[T]) delete(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	t.ids = slices.DeleteFunc(t.ids, func(s string) bool { return s == id })
	return true
}

func (t *table[T]) filter(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0)
	for _, id := range t.ids {
		if v := t.rows[id]; match(v) {
			out = append(out, v)
		}
	}
	return out
}

func paginate[T any](items []T, page *models.Page) []T {
	if page == nil {
		return items
	}

	n := int64(len(items))
	skip, limit := page.Skip(), page.Limit()
	if skip < 0 || skip >= n || limit <= 0 {
		return make([]T, 0)
	}
	end := n
	if limit < n-skip {
		end = skip + limit
	}
	return items[skip:end]
}

// words splits s into lower-cased letter and digit runs.
func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// textMatch reports whether any word of query equals a word of fields.
func textMatch(query string, fields ...string) bool {
	terms := words(query)
	for _, f := range fields {
		for _, w := range words(f) {
			if slices.Contains(terms, w) {
				return true
			}
		}
	}
	return false
}

func inOrEmpty(list []string, v string) bool {
	return len(list) == 0 || slices.Contains(list, v)
}

// ─── users ──────────────────────────────────────────────────────────────────

type memoryUserRepository struct {
	table *table[models.User]
}

func (f UserFilter) matches(u models.User) bool {
	return inOrEmpty(f.IDs, u.ID) &&
		(f.Email == "" || f.Email == u.Email) &&
		(f.Text == "" || textMatch(f.Text, u.FirstName, u.LastName))
}

func (r *memoryUserRepository) Insert(_ context.Context, user models.User) (models.User, error) {
	return r.table.insert(func(id string) models.User {
		user.ID = id
		return user
	}), nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id string) (models.User, error) {
	user, ok := r.table.get(id)
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (models.User, error) {
	if email == "" {
		return models.User{}, ErrUserNotFound
	}
	users := r.table.filter(UserFilter{Email: email}.matches)
	if len(users) == 0 {
		return models.User{}, ErrUserNotFound
	}
	return users[0], nil
}

func (r *memoryUserRepository) Find(_ context.Context, filter UserFilter, page *models.Page) ([]models.User, error) {
	return paginate(r.table.filter(filter.matches), page), nil
}

func (r *memoryUserRepository) Count(_ context.Context, filter UserFilter) (int64, error) {
	return int64(len(r.table.filter(filter.matches))), nil
}

func (r *memoryUserRepository) Replace(_ context.Context, user models.User) error {
	if !r.table.replace(user.ID, user) {
		return ErrUserNotFound
	}
	return nil
}

func (r *memoryUserRepository) Delete(_ context.Context, id string) error {
	if !r.table.delete(id) {
		return ErrUserNotFound
	}
	return nil
}

// ─── blogs ──────────────────────────────────────────────────────────────────

type memoryBlogRepository struct {
	table *table[models.Blog]
}

func (f BlogFilter) matches(b models.Blog) bool {
	return inOrEmpty(f.UserIDs, b.UserID) &&
		!slices.Contains(f.ExcludeIDs, b.ID) &&
		(f.Text == "" || textMatch(f.Text, b.Title, b.Description))
}

func (r *memoryBlogRepository) Insert(_ context.Context, blog models.Blog) (models.Blog, error) {
	return r.table.insert(func(id string) models.Blog {
		blog.ID = id
		return blog
	}), nil
}

func (r *memoryBlogRepository) FindByID(_ context.Context, id string) (models.Blog, error) {
	blog, ok := r.table.get(id)
	if !ok {
		return models.Blog{}, ErrBlogNotFound
	}
	return blog, nil
}

func (r *memoryBlogRepository) Find(_ context.Context, filter BlogFilter, page *models.Page) ([]models.Blog, error) {
	return paginate(r.table.filter(filter.matches), page), nil
}

func (r *memoryBlogRepository) Count(_ context.Context, filter BlogFilter) (int64, error) {
	return int64(len(r.table.filter(filter.matches))), nil
}

func (r *memoryBlogRepository) Replace(_ context.Context, blog models.Blog) error {
	if !r.table.replace(blog.ID, blog) {
		return ErrBlogNotFound
	}
	return nil
}

func (r *memoryBlogRepository) Delete(_ context.Context, id string) error {
	if !r.table.delete(id) {
		return ErrBlogNotFound
	}
	return nil
}

// ─── comments ───────────────────────────────────────────────────────────────

type memoryCommentRepository struct {
	table *table[models.Comment]
}

func (f CommentFilter) matches(c models.Comment) bool {
	return (f.BlogID == "" || f.BlogID == c.BlogID) &&
		(f.UserID == "" || f.UserID == c.UserID)
}

func (r *memoryCommentRepository) Insert(_ context.Context, comment models.Comment) (models.Comment, error) {
	return r.table.insert(func(id string) models.Comment {
		comment.ID = id
		return comment
	}), nil
}

func (r *memoryCommentRepository) FindByID(_ context.Context, id string) (models.Comment, error) {
	comment, ok := r.table.get(id)
	if !ok {
		return models.Comment{}, ErrCommentNotFound
	}
	return comment, nil
}

func (r *memoryCommentRepository) Find(_ context.Context, filter CommentFilter, page *models.Page) ([]models.Comment, error) {
	return paginate(r.table.filter(filter.matches), page), nil
}

func (r *memoryCommentRepository) Count(_ context.Context, filter CommentFilter) (int64, error) {
	return int64(len(r.table.filter(filter.matches))), nil
}

func (r *memoryCommentRepository) Replace(_ context.Context, comment models.Comment) error {
	if !r.table.replace(comment.ID, comment) {
		return ErrCommentNotFound
	}
	return nil
}

func (r *memoryCommentRepository) Delete(_ context.Context, id string) error {
	if !r.table.delete(id) {
		return ErrCommentNotFound
	}
	return nil
}
