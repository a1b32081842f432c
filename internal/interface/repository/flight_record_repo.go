package repository

import (
	"context"
	"fmt"

	"flight-audit-service/internal/domain/entity"
	"flight-audit-service/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFlightRecordRepository implements FlightRecordRepository
type MongoFlightRecordRepository struct {
	collection *mongo.Collection
}

// NewMongoFlightRecordRepository creates a new flight record repository
func NewMongoFlightRecordRepository(db *mongo.Database, collectionName string) repository.FlightRecordRepository {
	collection := db.Collection(collectionName)

	// Index the two grouping keys used by the audit
	ctx := context.Background()
	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "aircraftRegistration", Value: 1}, {Key: "departureDateTime", Value: 1}}},
		{Keys: bson.D{{Key: "flightNumber", Value: 1}, {Key: "departureDateTime", Value: 1}}},
	})

	return &MongoFlightRecordRepository{
		collection: collection,
	}
}

// FindAll returns every flight record in natural order
func (r *MongoFlightRecordRepository) FindAll(ctx context.Context) ([]entity.FlightRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query flight records: %w", err)
	}
	defer cursor.Close(ctx)

	records := []entity.FlightRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrDecode, err)
	}
	return records, nil
}

// SaveAll upserts records by ID. Records without an ID get a new one.
func (r *MongoFlightRecordRepository) SaveAll(ctx context.Context, records []entity.FlightRecord) error {
	if len(records) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(records))
	for _, record := range records {
		if record.ID == "" {
			record.ID = uuid.NewString()
		}
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": record.ID}).
			SetReplacement(record).
			SetUpsert(true))
	}

	if _, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true)); err != nil {
		return fmt.Errorf("failed to upsert flight records: %w", err)
	}
	return nil
}
