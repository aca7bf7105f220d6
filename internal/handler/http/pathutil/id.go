// Package pathutil extracts document identifiers from URL paths.
package pathutil

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned when the ID in the URL path is not a valid
// 24-character hex ObjectID.
var ErrInvalidID = errors.New("invalid id")

// ExtractObjectID extracts and parses an ObjectID from a URL path.
// It removes the specified prefix and attempts to parse the remaining string
// as a 24-character hex identifier.
//
// Example:
//
//	id, err := ExtractObjectID("/api/articles/64f1c0d2a5b6c7d8e9f0a1b2", "/api/articles/")
func ExtractObjectID(path, prefix string) (primitive.ObjectID, error) {
	idStr := strings.TrimPrefix(path, prefix)
	if idStr == "" || strings.Contains(idStr, "/") {
		return primitive.NilObjectID, ErrInvalidID
	}
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}
