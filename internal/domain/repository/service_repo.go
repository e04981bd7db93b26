package repository

import "context"

// ServiceRepository resolves service display names.
type ServiceRepository interface {
	// GetNamesByIDs returns a name for each known service ID. Unknown IDs are
	// simply absent from the result, not an error.
	GetNamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}
