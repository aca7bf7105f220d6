// Package mongodb provides MongoDB implementations of repository interfaces.
package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"newsdesk/internal/repository"
)

// ArticleFilterBuilder builds BSON filter documents for article queries.
// The builder is shared between the listing and single-document lookups so the
// soft-delete and published predicates stay in one place.
type ArticleFilterBuilder struct{}

// NewArticleFilterBuilder creates a new filter builder instance.
func NewArticleFilterBuilder() *ArticleFilterBuilder {
	return &ArticleFilterBuilder{}
}

// notDeleted matches documents whose deleted flag is absent or false.
// `deleted != true` rather than `deleted == false` so that documents written
// before the flag existed are still visible.
func notDeleted() bson.M {
	return bson.M{"$ne": true}
}

// textSearch expands a free-text query into a case-insensitive substring match
// over title, content, and summary. The query is quoted so regex
// metacharacters in user input match literally.
func textSearch(query string) bson.A {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	return bson.A{
		bson.M{"title": re},
		bson.M{"content": re},
		bson.M{"summary": re},
	}
}

// PublicList builds the filter for the public listing: published, not deleted,
// plus any caller-supplied predicates combined with AND.
func (b *ArticleFilterBuilder) PublicList(f repository.ArticleListFilter) bson.M {
	filter := bson.M{
		"published": true,
		"deleted":   notDeleted(),
	}
	if f.Region != "" {
		filter["region"] = f.Region
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Tag != "" {
		filter["tags"] = f.Tag
	}
	if f.Query != "" {
		filter["$or"] = textSearch(f.Query)
	}
	return filter
}

// AdminList builds the filter for the admin listing: not deleted, optionally
// restricted to an explicit published state.
func (b *ArticleFilterBuilder) AdminList(f repository.ArticleAdminFilter) bson.M {
	filter := bson.M{
		"deleted": notDeleted(),
	}
	if f.Published != nil {
		filter["published"] = *f.Published
	}
	if f.Query != "" {
		filter["$or"] = textSearch(f.Query)
	}
	return filter
}

// ByID builds a raw lookup filter addressing a document by ID only.
func (b *ArticleFilterBuilder) ByID(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id}
}

// LiveByID builds a lookup filter for a non-deleted document.
func (b *ArticleFilterBuilder) LiveByID(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id, "deleted": notDeleted()}
}

// PublishedByID builds a lookup filter for a published, non-deleted document.
func (b *ArticleFilterBuilder) PublishedByID(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id, "published": true, "deleted": notDeleted()}
}
