package store

import (
	"context"
	"time"

	"github.com/lamijafatic/blog-website-api/internal/logger"
	"github.com/lamijafatic/blog-website-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type blogDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Title            string             `bson:"title"`
	Description      string             `bson:"description"`
	DateCreated      time.Time          `bson:"dateCreated"`
	ImageURL         string             `bson:"imageUrl"`
	ImageDeleteToken string             `bson:"imageDeleteToken"`
	UserID           string             `bson:"userId"`
}

func newBlogDocument(b models.Blog) blogDocument {
	return blogDocument{
		Title:            b.Title,
		Description:      b.Description,
		DateCreated:      b.DateCreated,
		ImageURL:         b.ImageURL,
		ImageDeleteToken: b.ImageDeleteToken,
		UserID:           b.UserID,
	}
}

func (d blogDocument) model() models.Blog {
	return models.Blog{
		ID:               d.ID.Hex(),
		Title:            d.Title,
		Description:      d.Description,
		DateCreated:      d.DateCreated.UTC(),
		ImageURL:         d.ImageURL,
		ImageDeleteToken: d.ImageDeleteToken,
		UserID:           d.UserID,
	}
}

// blogRepository is the MongoDB implementation of [BlogRepository] over the
// "blogs" collection.
type blogRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
}

// NewBlogRepository constructs a [BlogRepository] on db.
func NewBlogRepository(db *DB, log *logger.Logger) BlogRepository {
	log.Debug().Msg("creating blog repository")
	return &blogRepository{coll: db.Collection(blogsCollection), logger: log}
}

func (f BlogFilter) bson() bson.M {
	filter := bson.M{}
	if len(f.UserIDs) > 0 {
		filter["userId"] = bson.M{"$in": f.UserIDs}
	}
	if len(f.ExcludeIDs) > 0 {
		filter["_id"] = bson.M{"$nin": objectIDs(f.ExcludeIDs)}
	}
	textFilter(filter, f.Text)
	return filter
}

func (r *blogRepository) Insert(ctx context.Context, blog models.Blog) (models.Blog, error) {
	id, err := insertOne(ctx, r.coll, newBlogDocument(blog))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*blogRepository.Insert").Msg("error inserting blog")
		return models.Blog{}, err
	}

	blog.ID = id
	return blog, nil
}

func (r *blogRepository) FindByID(ctx context.Context, id string) (models.Blog, error) {
	doc, err := findOne[blogDocument](ctx, r.coll, id, ErrBlogNotFound)
	if err != nil {
		return models.Blog{}, err
	}
	return doc.model(), nil
}

func (r *blogRepository) Find(ctx context.Context, filter BlogFilter, page *models.Page) ([]models.Blog, error) {
	blogs, err := findAll(ctx, r.coll, filter.bson(), page, blogDocument.model)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*blogRepository.Find").Msg("error finding blogs")
	}
	return blogs, err
}

func (r *blogRepository) Count(ctx context.Context, filter BlogFilter) (int64, error) {
	return count(ctx, r.coll, filter.bson())
}

func (r *blogRepository) Replace(ctx context.Context, blog models.Blog) error {
	return replaceOne(ctx, r.coll, blog.ID, newBlogDocument(blog), ErrBlogNotFound)
}

func (r *blogRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id, ErrBlogNotFound)
}
