package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/lamijafatic/blog-website-api/internal/logger"
	"github.com/lamijafatic/blog-website-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type userDocument struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty"`
	FirstName               string             `bson:"firstName"`
	LastName                string             `bson:"lastName"`
	Email                   string             `bson:"email"`
	Password                string             `bson:"password"`
	Role                    string             `bson:"role"`
	ProfileImageURL         string             `bson:"profileImageUrl,omitempty"`
	ProfileImageDeleteToken string             `bson:"profileImageDeleteToken,omitempty"`
}

func newUserDocument(u models.User) userDocument {
	return userDocument{
		FirstName:               u.FirstName,
		LastName:                u.LastName,
		Email:                   u.Email,
		Password:                u.PasswordHash,
		Role:                    u.Role.String(),
		ProfileImageURL:         u.ProfileImageURL,
		ProfileImageDeleteToken: u.ProfileImageDeleteToken,
	}
}

func (d userDocument) model() models.User {
	return models.User{
		ID:                      d.ID.Hex(),
		FirstName:               d.FirstName,
		LastName:                d.LastName,
		Email:                   d.Email,
		PasswordHash:            d.Password,
		Role:                    models.Role(d.Role),
		ProfileImageURL:         d.ProfileImageURL,
		ProfileImageDeleteToken: d.ProfileImageDeleteToken,
	}
}

// userRepository is the MongoDB implementation of [UserRepository] over the
// "users" collection.
type userRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] on db.
func NewUserRepository(db *DB, log *logger.Logger) UserRepository {
	log.Debug().Msg("creating user repository")
	return &userRepository{coll: db.Collection(usersCollection), logger: log}
}

func (f UserFilter) bson() bson.M {
	filter := bson.M{}
	if len(f.IDs) > 0 {
		filter["_id"] = bson.M{"$in": objectIDs(f.IDs)}
	}
	if f.Email != "" {
		filter["email"] = f.Email
	}
	textFilter(filter, f.Text)
	return filter
}

func (r *userRepository) Insert(ctx context.Context, user models.User) (models.User, error) {
	id, err := insertOne(ctx, r.coll, newUserDocument(user))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.Insert").Msg("error inserting user")
		return models.User{}, err
	}

	user.ID = id
	return user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	doc, err := findOne[userDocument](ctx, r.coll, id, ErrUserNotFound)
	if err != nil {
		return models.User{}, err
	}
	return doc.model(), nil
}

// FindByEmail matches the email exactly, case included.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.User{}, ErrUserNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindByEmail").Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return doc.model(), nil
}

func (r *userRepository) Find(ctx context.Context, filter UserFilter, page *models.Page) ([]models.User, error) {
	users, err := findAll(ctx, r.coll, filter.bson(), page, userDocument.model)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.Find").Msg("error finding users")
	}
	return users, err
}

func (r *userRepository) Count(ctx context.Context, filter UserFilter) (int64, error) {
	return count(ctx, r.coll, filter.bson())
}

func (r *userRepository) Replace(ctx context.Context, user models.User) error {
	return replaceOne(ctx, r.coll, user.ID, newUserDocument(user), ErrUserNotFound)
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.coll, id, ErrUserNotFound)
}
