package repository

import (
	"context"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/model"
)

// PetRepository defines read-only queries over pets.
type PetRepository interface {
	// CountByCustomer counts the customer's pets.
	CountByCustomer(ctx context.Context, customerID string) (int, error)

	// ListRecentByCustomer returns the customer's pets ordered by creation
	// time descending, capped at limit.
	ListRecentByCustomer(ctx context.Context, customerID string, limit int) ([]*model.Pet, error)
}
