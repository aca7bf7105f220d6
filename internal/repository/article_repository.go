// Package repository defines the persistence interfaces used by the use case layer.
// Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"newsdesk/internal/domain/entity"
)

// ArticleListFilter contains the optional predicates for the public article listing.
// All predicates are combined with AND; Query alone expands to an OR over the
// text fields (title, content, summary).
type ArticleListFilter struct {
	Query    string // case-insensitive substring match on title/content/summary
	Region   string
	Category string
	Tag      string // membership test against the tags array
	Limit    *int64 // nil means the use case default; an explicit value is range-checked
}

// ArticleAdminFilter contains the optional predicates for the admin listing.
// Unlike the public listing it can address unpublished articles, but it still
// excludes soft-deleted ones.
type ArticleAdminFilter struct {
	Query     string
	Published *bool
	Limit     *int64
}

type ArticleRepository interface {
	// Create inserts the article and returns the server-assigned ID.
	Create(ctx context.Context, article *entity.Article) (primitive.ObjectID, error)
	// Get retrieves an article by ID regardless of its published or deleted
	// state. Returns (nil, nil) if no document exists.
	Get(ctx context.Context, id primitive.ObjectID) (*entity.Article, error)
	// GetLive retrieves a non-deleted article by ID, published or not.
	// Returns (nil, nil) if no live document exists.
	GetLive(ctx context.Context, id primitive.ObjectID) (*entity.Article, error)
	// GetPublished retrieves a published, non-deleted article by ID.
	// Returns (nil, nil) if no matching document exists.
	GetPublished(ctx context.Context, id primitive.ObjectID) (*entity.Article, error)
	// List returns published, non-deleted articles matching the filter,
	// ordered by published_at descending.
	List(ctx context.Context, filter ArticleListFilter) ([]*entity.Article, error)
	// ListAdmin returns non-deleted articles matching the filter, including
	// unpublished ones, ordered by updated_at descending.
	ListAdmin(ctx context.Context, filter ArticleAdminFilter) ([]*entity.Article, error)
	// Update replaces the stored fields of the article identified by its ID.
	// Returns false if no document matched.
	Update(ctx context.Context, article *entity.Article) (bool, error)
	// SoftDelete marks the article deleted and forces published to false.
	// Returns false if no document matched.
	SoftDelete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
