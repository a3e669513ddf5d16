package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"thecut/models"
)

// ReservationRepository is the store adapter for the shared, append-only
// reservation set.
//
// Create performs no uniqueness check on (barberId, date, time); concurrent
// wizard sessions can double-book a slot and both records persist.
type ReservationRepository interface {
	// Create persists a new reservation and returns its assigned id.
	Create(ctx context.Context, res *models.Reservation) (string, error)
	// ListAll returns the full current snapshot, in insertion order.
	// An empty barberID returns every barber's reservations.
	ListAll(ctx context.Context, barberID string) ([]models.Reservation, error)
	// Subscribe opens a live feed of full snapshots for the given barber
	// (or all barbers when empty). The subscription stays open until
	// closed or the context is cancelled.
	Subscribe(ctx context.Context, barberID string) (*Subscription, error)
}

// MongoReservationRepo implements ReservationRepository on the "bookings"
// collection.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

func NewMongoReservationRepo(db *mongo.Database) *MongoReservationRepo {
	return &MongoReservationRepo{coll: db.Collection("bookings")}
}

func (r *MongoReservationRepo) Create(ctx context.Context, res *models.Reservation) (string, error) {
	if res.BarberID == "" {
		return "", fmt.Errorf("reservation must reference a barber")
	}
	res.ID = uuid.New().String()
	res.CreatedAt = time.Now().UTC()
	if _, err := r.coll.InsertOne(ctx, res); err != nil {
		return "", fmt.Errorf("failed to persist reservation: %w", err)
	}
	return res.ID, nil
}

func (r *MongoReservationRepo) ListAll(ctx context.Context, barberID string) ([]models.Reservation, error) {
	filter := bson.M{}
	if barberID != "" {
		filter["barberId"] = barberID
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return reservations, nil
}

func (r *MongoReservationRepo) Subscribe(ctx context.Context, barberID string) (*Subscription, error) {
	pipeline := mongo.Pipeline{}
	if barberID != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{
			"fullDocument.barberId": barberID,
		}}})
	}

	subCtx, cancel := context.WithCancel(ctx)
	stream, err := r.coll.Watch(subCtx, pipeline)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open reservation feed: %w", err)
	}

	sub := newSubscription(cancel)
	go sub.run(subCtx, stream, func(c context.Context) ([]models.Reservation, error) {
		return r.ListAll(c, barberID)
	})
	return sub, nil
}
