package repository

import (
	"context"
	"time"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/model"
)

// WalkInRepository defines read-only queries over walk-in bookings.
// Walk-ins are date-scoped by their creation time.
type WalkInRepository interface {
	// CountByCustomer counts every walk-in owned by the customer, any status.
	CountByCustomer(ctx context.Context, customerID string) (int, error)

	// CountPendingByCustomer counts the customer's walk-ins still pending.
	CountPendingByCustomer(ctx context.Context, customerID string) (int, error)

	// CountCreatedBetween counts non-cancelled walk-ins created within [from, to).
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)

	// ListRecentByCustomer returns the customer's most recently created
	// walk-ins, newest first, capped at limit.
	ListRecentByCustomer(ctx context.Context, customerID string, limit int) ([]*model.WalkIn, error)

	// ListCompletedByCustomer returns every completed walk-in for the customer.
	ListCompletedByCustomer(ctx context.Context, customerID string) ([]*model.WalkIn, error)

	// ListCreatedBetween returns walk-ins created within [from, to), optionally
	// restricted to one status ("" applies no status predicate), ordered by
	// creation time ascending, capped at limit.
	ListCreatedBetween(ctx context.Context, from, to time.Time, status string, limit int) ([]*model.WalkIn, error)

	// ListCreatedSince returns walk-ins created at or after since, newest
	// first, capped at limit.
	ListCreatedSince(ctx context.Context, since time.Time, limit int) ([]*model.WalkIn, error)

	// SumCompletedPaidBetween sums totals of completed, paid walk-ins created
	// within [from, to).
	SumCompletedPaidBetween(ctx context.Context, from, to time.Time) (float64, error)
}
