package repository

import (
	"context"
	"time"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/model"
)

// AppointmentRepository defines read-only queries over scheduled appointments.
// Appointments are date-scoped by their scheduled time.
type AppointmentRepository interface {
	// CountByCustomer counts every appointment owned by the customer, any status.
	CountByCustomer(ctx context.Context, customerID string) (int, error)

	// CountUpcomingByCustomer counts pending/confirmed appointments scheduled at or after from.
	CountUpcomingByCustomer(ctx context.Context, customerID string, from time.Time) (int, error)

	// CountPending counts pending appointments globally, not date-scoped.
	CountPending(ctx context.Context) (int, error)

	// CountScheduledBetween counts non-cancelled appointments scheduled within [from, to).
	CountScheduledBetween(ctx context.Context, from, to time.Time) (int, error)

	// ListRecentByCustomer returns the customer's most recently created
	// appointments, newest first, capped at limit.
	ListRecentByCustomer(ctx context.Context, customerID string, limit int) ([]*model.Appointment, error)

	// ListCompletedByCustomer returns every completed appointment for the customer.
	ListCompletedByCustomer(ctx context.Context, customerID string) ([]*model.Appointment, error)

	// ListScheduledBetween returns appointments scheduled within [from, to),
	// optionally restricted to one status ("" applies no status predicate),
	// ordered by scheduled time ascending, capped at limit.
	ListScheduledBetween(ctx context.Context, from, to time.Time, status string, limit int) ([]*model.Appointment, error)

	// ListCreatedSince returns appointments created at or after since, newest
	// first, capped at limit.
	ListCreatedSince(ctx context.Context, since time.Time, limit int) ([]*model.Appointment, error)

	// SumCompletedPaidBetween sums totals of completed, paid appointments
	// scheduled within [from, to).
	SumCompletedPaidBetween(ctx context.Context, from, to time.Time) (float64, error)
}
