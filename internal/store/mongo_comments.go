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

type commentDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	BlogID     string             `bson:"blogId"`
	UserID     string             `bson:"userId"`
	Content    string             `bson:"content"`
	DatePosted time.Time          `bson:"datePosted"`
}

func newCommentDocument(c models.Comment) commentDocument {
	return commentDocument{
		BlogID:     c.BlogID,
		UserID:     c.UserID,
		Content:    c.Content,
		DatePosted: c.DatePosted,
	}
}

func (d commentDocument) model() models.Comment {
	return models.Comment{
		ID:         d.ID.Hex(),
		BlogID:     d.BlogID,
		UserID:     d.UserID,
		Content:    d.Content,
		DatePosted: d.DatePosted.UTC(),
	}
}

// commentRepository is the MongoDB implementation of [CommentRepository]
// over the "comments" collection.
type commentRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
}

// NewCommentRepository constructs a [CommentRepository] on db.
func NewCommentRepository(db *DB, log *logger.Logger) CommentRepository {
	log.Debug().Msg("creating comment repository")
	return &commentRepository{coll: db.Collection(commentsCollection), logger: log}
}

func (f CommentFilter) bson() bson.M {
	filter := bson.M{}
	if f.BlogID != "" {
		filter["blogId"] = f.BlogID
	}
	if f.UserID != "" {
		filter["userId"] = f.UserID
	}
	return filter
}

func (r *commentRepository) Insert(ctx context.Context, comment models.Comment) (models.Comment, error) {
	id, err := insertOne(ctx, r.coll, newCommentDocument(comment))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentRepository.Insert").Msg("error inserting comment")
		return models.Comment{}, err
	}

	comment.ID = id
	return comment, nil
}

func (r *commentRepository) FindByID(ctx context.Context, id string) (models.Comment, error) {
	doc, err := findOne[commentDocument](ctx, r.coll, id, ErrCommentNotFound)
	if err != nil {
		return models.Comment{}, err
	}
	return doc.model(), nil
}

func (r *commentRepository) Find(ctx context.Context, filter CommentFilter, page *models.Page) ([]models.Comment, error) {
	comments, err := findAll(ctx, r.coll, filter.bson(), page, commentDocument.model)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentRepository.Find").Msg("error finding comments")
	}
	return comments, err
}

func (r *commentRepository) Count(ctx context.Context, filter CommentFilter) (int64, error) {
	return count(ctx, r.coll, filter.bson())
}

func (r *commentRepository) Replace(ctx context.Context, comment models.Comment) error {
	return replaceOne(ctx, r.coll, comment.ID, newCommentDocument(comment), ErrCommentNotFound)
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id, ErrCommentNotFound)
}
