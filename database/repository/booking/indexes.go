package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"meetdesk/database"
)

// EnsureIndexes creates the booking collection indexes. The partial unique
// index on (scheduled_date, scheduled_time) over confirmed bookings makes the
// write path the final arbiter of at-most-one-confirmed-booking-per-slot,
// closing the race the application-level re-check alone cannot.
func EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := database.MongoClient.Database("meetdesk").Collection("bookings")

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "id", Value: 1}},
			Options: options.Index().
				SetName("booking_id_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "scheduled_date", Value: 1},
				{Key: "scheduled_time", Value: 1},
			},
			Options: options.Index().
				SetName("confirmed_slot_unique").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": "confirmed"}),
		},
		{
			Keys: bson.D{{Key: "scheduled_date", Value: 1}},
			Options: options.Index().
				SetName("booking_date"),
		},
	}

	if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("error creating booking indexes: %w", err)
	}
	return nil
}
