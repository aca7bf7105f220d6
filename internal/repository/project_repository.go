package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"newsdesk/internal/domain/entity"
)

// ProjectListFilter contains the optional predicates for the project listing.
type ProjectListFilter struct {
	Tag    string
	Status string
	Limit  *int64 // nil means the use case default; an explicit value is range-checked
}

type ProjectRepository interface {
	// Create inserts the project and returns the server-assigned ID.
	Create(ctx context.Context, project *entity.Project) (primitive.ObjectID, error)
	// Get retrieves a project by ID. Returns (nil, nil) if absent.
	Get(ctx context.Context, id primitive.ObjectID) (*entity.Project, error)
	// List returns projects matching the filter, ordered by created_at descending.
	List(ctx context.Context, filter ProjectListFilter) ([]*entity.Project, error)
	// Update replaces the stored fields of the project identified by its ID.
	// Returns false if no document matched.
	Update(ctx context.Context, project *entity.Project) (bool, error)
	// Delete removes the project permanently. Returns false if no document matched.
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
