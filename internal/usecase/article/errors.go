// Package article provides use cases for managing article documents.
// It implements business logic for creating, updating, soft-deleting, and
// querying articles, including validation and interaction with the article
// repository.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found,
	// or that it exists only as a soft-deleted document.
	ErrArticleNotFound = errors.New("article not found")

	// ErrEmptyUpdate indicates that an update carried no fields at all.
	// Empty patches are rejected so updated_at is never refreshed for a no-op.
	ErrEmptyUpdate = errors.New("nothing to update")
)
