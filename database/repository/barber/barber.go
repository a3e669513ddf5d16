package barberRepo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"thecut/models"
)

// ErrBarberNotFound is returned when no profile exists for a slug. Callers
// on the booking path fall back to a placeholder profile instead of failing.
var ErrBarberNotFound = errors.New("barber profile not found")

// BarberRepository defines methods for barber profile data access.
type BarberRepository interface {
	GetBySlug(ctx context.Context, slug string) (*models.BarberProfile, error)
	Upsert(ctx context.Context, profile *models.BarberProfile) error
}

// MongoBarberRepo implements BarberRepository on the "barbers" collection.
type MongoBarberRepo struct {
	coll *mongo.Collection
}

func NewMongoBarberRepo(db *mongo.Database) *MongoBarberRepo {
	return &MongoBarberRepo{coll: db.Collection("barbers")}
}

func (r *MongoBarberRepo) GetBySlug(ctx context.Context, slug string) (*models.BarberProfile, error) {
	var profile models.BarberProfile
	err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch barber %q: %w", slug, err)
	}
	return &profile, nil
}

func (r *MongoBarberRepo) Upsert(ctx context.Context, profile *models.BarberProfile) error {
	if profile.Slug == "" {
		return errors.New("barber profile must have a slug")
	}
	filter := bson.M{"slug": profile.Slug}
	update := bson.M{"$set": profile}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert barber %q: %w", profile.Slug, err)
	}
	return nil
}
