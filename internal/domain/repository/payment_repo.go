package repository

import (
	"context"
	"time"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/model"
)

// PaymentRepository defines read-only queries over payment records.
type PaymentRepository interface {
	// ListCompletedSince returns completed payments paid at or after since,
	// newest first, capped at limit.
	ListCompletedSince(ctx context.Context, since time.Time, limit int) ([]*model.Payment, error)
}
