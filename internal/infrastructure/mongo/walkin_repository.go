package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/model"
)

// MongoWalkInRepository implements repository.WalkInRepository over the
// "walk_ins" collection. Walk-ins are date-scoped by creation time.
type MongoWalkInRepository struct {
	collection *mongo.Collection
}

func NewMongoWalkInRepository(db *mongo.Database) *MongoWalkInRepository {
	collection := db.Collection("walk_ins")

	ctx := context.Background()
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		fmt.Printf("Warning: failed to create walk-in indexes: %v\n", err)
	}

	return &MongoWalkInRepository{collection: collection}
}

func (r *MongoWalkInRepository) CountByCustomer(ctx context.Context, customerID string) (int, error) {
	return r.count(ctx, bson.M{"customer_id": customerID})
}

func (r *MongoWalkInRepository) CountPendingByCustomer(ctx context.Context, customerID string) (int, error) {
	return r.count(ctx, bson.M{
		"customer_id": customerID,
		"status":      model.StatusPending,
	})
}

func (r *MongoWalkInRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	return r.count(ctx, bson.M{
		"status":     bson.M{"$ne": model.StatusCancelled},
		"created_at": bson.M{"$gte": from, "$lt": to},
	})
}

func (r *MongoWalkInRepository) ListRecentByCustomer(ctx context.Context, customerID string, limit int) ([]*model.WalkIn, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	return r.find(ctx, bson.M{"customer_id": customerID}, opts)
}

func (r *MongoWalkInRepository) ListCompletedByCustomer(ctx context.Context, customerID string) ([]*model.WalkIn, error) {
	filter := bson.M{
		"customer_id": customerID,
		"status":      model.StatusCompleted,
	}
	return r.find(ctx, filter, options.Find())
}

func (r *MongoWalkInRepository) ListCreatedBetween(ctx context.Context, from, to time.Time, status string, limit int) ([]*model.WalkIn, error) {
	filter := bson.M{
		"created_at": bson.M{"$gte": from, "$lt": to},
	}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: 1}})

	return r.find(ctx, filter, opts)
}

func (r *MongoWalkInRepository) ListCreatedSince(ctx context.Context, since time.Time, limit int) ([]*model.WalkIn, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	return r.find(ctx, bson.M{"created_at": bson.M{"$gte": since}}, opts)
}

func (r *MongoWalkInRepository) SumCompletedPaidBetween(ctx context.Context, from, to time.Time) (float64, error) {
	filter := bson.M{
		"status":         model.StatusCompleted,
		"payment_status": model.PaymentStatusPaid,
		"created_at":     bson.M{"$gte": from, "$lt": to},
	}
	return sumTotals(ctx, r.collection, filter)
}

func (r *MongoWalkInRepository) count(ctx context.Context, filter bson.M) (int, error) {
	n, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count walk-ins: %w", err)
	}
	return int(n), nil
}

func (r *MongoWalkInRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.WalkIn, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find walk-ins: %w", err)
	}
	defer cursor.Close(ctx)

	var walkIns []*model.WalkIn
	if err := cursor.All(ctx, &walkIns); err != nil {
		return nil, fmt.Errorf("failed to decode walk-ins: %w", err)
	}
	return walkIns, nil
}
