package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/booklore/booklore/internal/core/domain"
)

const profileCollection = "profiles"

// ProfileRepository persists the companion public-profile record created
// after registration. Profiles start empty and public; the profile CRUD
// surface fills them in later.
type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profileCollection)}
}

type mongoProfile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Bio       string             `bson:"bio"`
	Public    bool               `bson:"public"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *ProfileRepository) Create(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrUserNotFound
	}
	doc := mongoProfile{
		UserID:    userID,
		Public:    true,
		CreatedAt: time.Now().UTC().Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}
