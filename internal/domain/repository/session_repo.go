package repository

import (
	"context"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/model"
)

// SessionRepository defines read-only queries over booking execution records.
type SessionRepository interface {
	// ListByBookingIDs returns the sessions attached to any of the given
	// bookings. A booking has zero or one session.
	ListByBookingIDs(ctx context.Context, bookingIDs []string) ([]*model.Session, error)
}
