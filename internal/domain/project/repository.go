package project

import "context"

// ProjectRepository defines access to the upstream project catalog.
type ProjectRepository interface {
	// GetAll retrieves every project with its nested member allocations.
	// Allocation totals must be computed over the full catalog, including
	// projects the caller is not currently editing.
	GetAll(ctx context.Context) ([]Project, error)
}
