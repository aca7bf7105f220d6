package project

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/repository"
)

// Listing limits, matching the public article listing.
const (
	DefaultLimit = 24
	MaxLimit     = 100
)

// CreateInput represents the input parameters for creating a new project.
type CreateInput struct {
	Name        string
	Description string
	Link        string
	Tags        []string
	Status      string // defaults to entity.StatusActive
}

// UpdateInput represents a sparse patch against an existing project.
// Fields with nil values are left untouched.
type UpdateInput struct {
	ID          primitive.ObjectID
	Name        *string
	Description *string
	Link        *string
	Tags        *[]string
	Status      *string
}

// isEmpty reports whether the patch carries no fields at all.
func (in UpdateInput) isEmpty() bool {
	return in.Name == nil && in.Description == nil && in.Link == nil &&
		in.Tags == nil && in.Status == nil
}

// Service provides project management use cases.
type Service struct {
	Repo repository.ProjectRepository
}

// Create validates the input, applies defaults, and stores a new project.
// Returns a ValidationError if a required field is missing.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Project, error) {
	if in.Name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if in.Description == "" {
		return nil, &entity.ValidationError{Field: "description", Message: "is required"}
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	status := in.Status
	if status == "" {
		status = entity.StatusActive
	}

	now := time.Now().UTC()
	proj := &entity.Project{
		Name:        in.Name,
		Description: in.Description,
		Link:        in.Link,
		Tags:        tags,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.Repo.Create(ctx, proj); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	metrics.RecordProjectMutation("create")
	return proj, nil
}

// List returns projects matching the filter, newest first. A nil limit falls
// back to DefaultLimit; an explicit limit outside [1, MaxLimit] is rejected,
// so a client-supplied 0 is an error rather than a silent default.
func (s *Service) List(ctx context.Context, filter repository.ProjectListFilter) ([]*entity.Project, error) {
	if filter.Limit == nil {
		def := int64(DefaultLimit)
		filter.Limit = &def
	}
	if *filter.Limit < 1 || *filter.Limit > MaxLimit {
		return nil, &entity.ValidationError{
			Field:   "limit",
			Message: fmt.Sprintf("must be between 1 and %d", MaxLimit),
		}
	}

	projects, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Update applies a sparse patch to an existing project and returns the
// updated document. Returns ErrEmptyUpdate for an empty patch and
// ErrProjectNotFound if the project does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Project, error) {
	if in.isEmpty() {
		return nil, ErrEmptyUpdate
	}

	proj, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if proj == nil {
		return nil, ErrProjectNotFound
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, &entity.ValidationError{Field: "name", Message: "cannot be empty"}
		}
		proj.Name = *in.Name
	}
	if in.Description != nil {
		if *in.Description == "" {
			return nil, &entity.ValidationError{Field: "description", Message: "cannot be empty"}
		}
		proj.Description = *in.Description
	}
	if in.Link != nil {
		proj.Link = *in.Link
	}
	if in.Tags != nil {
		proj.Tags = *in.Tags
	}
	if in.Status != nil {
		proj.Status = *in.Status
	}
	proj.UpdatedAt = time.Now().UTC()

	matched, err := s.Repo.Update(ctx, proj)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	if !matched {
		return nil, ErrProjectNotFound
	}
	metrics.RecordProjectMutation("update")
	return proj, nil
}

// Delete removes a project permanently.
// Returns ErrProjectNotFound if no document matched, so a second delete of the
// same ID reports not found.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if !deleted {
		return ErrProjectNotFound
	}
	metrics.RecordProjectMutation("delete")
	return nil
}
