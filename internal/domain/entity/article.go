// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article and Project, along with
// their validation rules and domain-specific errors.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article represents a news article document.
// Articles are soft-deleted: the Deleted flag hides them from every listing
// while the document stays recoverable in the store.
type Article struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Summary     string             `bson:"summary,omitempty"`
	Content     string             `bson:"content"`
	Category    string             `bson:"category"`
	Region      string             `bson:"region"`
	Tags        []string           `bson:"tags"`
	Author      string             `bson:"author,omitempty"`
	ImageURL    string             `bson:"image_url,omitempty"`
	Published   bool               `bson:"published"`
	PublishedAt *time.Time         `bson:"published_at,omitempty"`
	Deleted     bool               `bson:"deleted"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}
