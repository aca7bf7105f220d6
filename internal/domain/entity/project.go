package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusActive is the default status assigned to new projects.
const StatusActive = "active"

// Project represents a showcased portfolio project document.
// Unlike articles, projects are deleted physically.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Link        string             `bson:"link,omitempty"`
	Tags        []string           `bson:"tags"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}
