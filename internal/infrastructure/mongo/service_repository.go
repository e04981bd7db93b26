package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/model"
)

// MongoServiceRepository implements repository.ServiceRepository over the
// "services" collection.
type MongoServiceRepository struct {
	collection *mongo.Collection
}

func NewMongoServiceRepository(db *mongo.Database) *MongoServiceRepository {
	return &MongoServiceRepository{collection: db.Collection("services")}
}

func (r *MongoServiceRepository) GetNamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find services: %w", err)
	}
	defer cursor.Close(ctx)

	names := make(map[string]string, len(ids))
	for cursor.Next(ctx) {
		var service model.Service
		if err := cursor.Decode(&service); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		names[service.ID] = service.Name
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return names, nil
}
