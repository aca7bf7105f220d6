// Package project provides use cases for managing portfolio project documents.
package project

import "errors"

// Sentinel errors for project use case operations.
var (
	// ErrProjectNotFound indicates that the requested project was not found.
	ErrProjectNotFound = errors.New("project not found")

	// ErrEmptyUpdate indicates that an update carried no fields at all.
	ErrEmptyUpdate = errors.New("nothing to update")
)
