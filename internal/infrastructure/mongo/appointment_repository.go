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

// MongoAppointmentRepository implements repository.AppointmentRepository
// over the "appointments" collection.
type MongoAppointmentRepository struct {
	collection *mongo.Collection
}

// NewMongoAppointmentRepository creates the repository and bootstraps the
// secondary indexes its query battery relies on.
func NewMongoAppointmentRepository(db *mongo.Database) *MongoAppointmentRepository {
	collection := db.Collection("appointments")

	ctx := context.Background()
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "customer_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "scheduled_at", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		fmt.Printf("Warning: failed to create appointment indexes: %v\n", err)
	}

	return &MongoAppointmentRepository{collection: collection}
}

func (r *MongoAppointmentRepository) CountByCustomer(ctx context.Context, customerID string) (int, error) {
	return r.count(ctx, bson.M{"customer_id": customerID})
}

func (r *MongoAppointmentRepository) CountUpcomingByCustomer(ctx context.Context, customerID string, from time.Time) (int, error) {
	return r.count(ctx, bson.M{
		"customer_id":  customerID,
		"status":       bson.M{"$in": []string{model.StatusPending, model.StatusConfirmed}},
		"scheduled_at": bson.M{"$gte": from},
	})
}

func (r *MongoAppointmentRepository) CountPending(ctx context.Context) (int, error) {
	return r.count(ctx, bson.M{"status": model.StatusPending})
}

func (r *MongoAppointmentRepository) CountScheduledBetween(ctx context.Context, from, to time.Time) (int, error) {
	return r.count(ctx, bson.M{
		"status":       bson.M{"$ne": model.StatusCancelled},
		"scheduled_at": bson.M{"$gte": from, "$lt": to},
	})
}

func (r *MongoAppointmentRepository) ListRecentByCustomer(ctx context.Context, customerID string, limit int) ([]*model.Appointment, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	return r.find(ctx, bson.M{"customer_id": customerID}, opts)
}

func (r *MongoAppointmentRepository) ListCompletedByCustomer(ctx context.Context, customerID string) ([]*model.Appointment, error) {
	filter := bson.M{
		"customer_id": customerID,
		"status":      model.StatusCompleted,
	}
	return r.find(ctx, filter, options.Find())
}

func (r *MongoAppointmentRepository) ListScheduledBetween(ctx context.Context, from, to time.Time, status string, limit int) ([]*model.Appointment, error) {
	filter := bson.M{
		"scheduled_at": bson.M{"$gte": from, "$lt": to},
	}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "scheduled_at", Value: 1}})

	return r.find(ctx, filter, opts)
}

func (r *MongoAppointmentRepository) ListCreatedSince(ctx context.Context, since time.Time, limit int) ([]*model.Appointment, error) {
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	return r.find(ctx, bson.M{"created_at": bson.M{"$gte": since}}, opts)
}

func (r *MongoAppointmentRepository) SumCompletedPaidBetween(ctx context.Context, from, to time.Time) (float64, error) {
	filter := bson.M{
		"status":         model.StatusCompleted,
		"payment_status": model.PaymentStatusPaid,
		"scheduled_at":   bson.M{"$gte": from, "$lt": to},
	}
	return sumTotals(ctx, r.collection, filter)
}

func (r *MongoAppointmentRepository) count(ctx context.Context, filter bson.M) (int, error) {
	n, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return int(n), nil
}

func (r *MongoAppointmentRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.Appointment, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []*model.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appointments, nil
}
