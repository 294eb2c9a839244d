package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/lamijafatic/blog-website-api/internal/config"
	"github.com/lamijafatic/blog-website-api/internal/logger"
	"github.com/lamijafatic/blog-website-api/migrations"
	"github.com/lamijafatic/blog-website-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection    = "users"
	blogsCollection    = "blogs"
	commentsCollection = "comments"
)

// DB is a connected MongoDB client bound to one database.
type DB struct {
	*mongo.Database
	client *mongo.Client
	logger *logger.Logger
}

// NewConnectMongo connects to cfg.URI, pings the primary and binds the
// configured database. The connect timeout bounds both steps.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Name).Msg("connected to database successfully")

	return &DB{
		Database: client.Database(cfg.Name),
		client:   client,
		logger:   log,
	}, nil
}

// Migrate applies the embedded index migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.client, db.Name())
}

// Close disconnects the client.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

// NewMongoStorages connects, migrates and returns the MongoDB repositories.
func NewMongoStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectMongo(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewMongoStorages").Msg("error applying migrations")
		_ = db.Close(context.Background())
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		BlogRepository:    NewBlogRepository(db, log),
		CommentRepository: NewCommentRepository(db, log),
		close:             db.Close,
	}, nil
}

// ─── helpers ────────────────────────────────────────────────────────────────

// objectIDs converts hex ids, dropping malformed ones.
func objectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			out = append(out, oid)
		}
	}
	return out
}

// findOptions sorts by _id, which follows insertion order for generated
// ObjectIDs, and applies page when set.
func findOptions(page *models.Page) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if page != nil {
		opts.SetSkip(page.Skip()).SetLimit(page.Limit())
	}
	return opts
}

func textFilter(filter bson.M, text string) {
	if text != "" {
		filter["$text"] = bson.M{"$search": text}
	}
}

// findAll runs filter against coll and decodes every document with toModel.
func findAll[D any, M any](ctx context.Context, coll *mongo.Collection, filter bson.M, page *models.Page, toModel func(D) M) ([]M, error) {
	cursor, err := coll.Find(ctx, filter, findOptions(page))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var docs []D
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	out := make([]M, 0, len(docs))
	for _, d := range docs {
		out = append(out, toModel(d))
	}
	return out, nil
}

// findOne fetches the document with _id equal to id. Malformed ids and
// missing documents both yield notFound.
func findOne[D any](ctx context.Context, coll *mongo.Collection, id string, notFound error) (D, error) {
	var doc D
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return doc, notFound
	}

	err = coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return doc, notFound
	case err != nil:
		return doc, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return doc, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc any) (string, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%w: unexpected inserted id %v", ErrDecodingDocument, res.InsertedID)
	}
	return oid.Hex(), nil
}

// replaceOne replaces the document with _id equal to id. A zero matched
// count yields notFound.
func replaceOne(ctx context.Context, coll *mongo.Collection, id string, doc any, notFound error) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return notFound
	}

	res, err := coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if res.MatchedCount == 0 {
		return notFound
	}
	return nil
}

// deleteOne removes the document with _id equal to id. A zero deleted
// count yields notFound.
func deleteOne(ctx context.Context, coll *mongo.Collection, id string, notFound error) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return notFound
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if res.DeletedCount == 0 {
		return notFound
	}
	return nil
}

func count(ctx context.Context, coll *mongo.Collection, filter bson.M) (int64, error) {
	n, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}
