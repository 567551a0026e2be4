package settingsRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"meetdesk/config"
	"meetdesk/database"
	"meetdesk/models"
)

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo constructs a new instance of MongoSettingsRepo.
func NewMongoSettingsRepo() SettingsRepository {
	db := database.MongoClient.Database("meetdesk")
	return &MongoSettingsRepo{
		coll: db.Collection("booking_settings"),
	}
}

// Get returns the settings singleton, seeding defaults on first read.
func (repo *MongoSettingsRepo) Get() (*models.BookingSettings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var settings models.BookingSettings
	err := repo.coll.FindOne(ctx, bson.M{}).Decode(&settings)
	if err == nil {
		return &settings, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("error fetching booking settings: %w", err)
	}

	// First read: seed defaults.
	settings = models.DefaultBookingSettings(config.AppConfig.DefaultTimezone)
	settings.ID = uuid.New().String()
	now := time.Now().UTC()
	settings.CreatedAt = now
	settings.UpdatedAt = now

	if _, err := repo.coll.InsertOne(ctx, &settings); err != nil {
		return nil, fmt.Errorf("error seeding default booking settings: %w", err)
	}
	return &settings, nil
}

// Update applies a partial update to the settings singleton.
func (repo *MongoSettingsRepo) Update(update models.SettingsUpdate) error {
	current, err := repo.Get()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	raw, err := bson.Marshal(update)
	if err != nil {
		return fmt.Errorf("error encoding settings update: %w", err)
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("error decoding settings update: %w", err)
	}
	fields["updated_at"] = time.Now().UTC()

	if _, err := repo.coll.UpdateOne(ctx, bson.M{"id": current.ID}, bson.M{"$set": fields}); err != nil {
		return fmt.Errorf("error updating booking settings: %w", err)
	}
	return nil
}
