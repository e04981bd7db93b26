package repository

import (
	"context"

	"github.com/johanna-panganuron/capstone-pet-grooming-backend-sub002/internal/domain/model"
)

// NotFoundError is returned by repositories when a requested record does not
// exist. A missing customer is distinct from a customer with no data.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// CustomerRepository resolves customer identity records.
type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*model.Customer, error)
}
