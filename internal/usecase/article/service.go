package article

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/repository"
)

// Listing limits. Requests outside these bounds are rejected, not clamped.
const (
	DefaultPublicLimit = 24
	MaxPublicLimit     = 100
	DefaultAdminLimit  = 50
	MaxAdminLimit      = 200
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title       string
	Summary     string
	Content     string
	Category    string
	Region      string
	Tags        []string
	Author      string
	ImageURL    string
	Published   *bool // defaults to true
	PublishedAt *time.Time
}

// UpdateInput represents a sparse patch against an existing article.
// Fields with nil values are left untouched.
type UpdateInput struct {
	ID        primitive.ObjectID
	Title     *string
	Summary   *string
	Content   *string
	Category  *string
	Region    *string
	Tags      *[]string
	Author    *string
	ImageURL  *string
	Published *bool
}

// isEmpty reports whether the patch carries no fields at all.
func (in UpdateInput) isEmpty() bool {
	return in.Title == nil && in.Summary == nil && in.Content == nil &&
		in.Category == nil && in.Region == nil && in.Tags == nil &&
		in.Author == nil && in.ImageURL == nil && in.Published == nil
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// Create validates the input, applies defaults, and stores a new article.
// An article created as published gets its published_at stamped immediately
// unless the caller supplied one; published_at is never set for drafts.
// Returns a ValidationError if a required field is missing.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if in.Content == "" {
		return nil, &entity.ValidationError{Field: "content", Message: "is required"}
	}
	if in.Category == "" {
		return nil, &entity.ValidationError{Field: "category", Message: "is required"}
	}
	if in.Region == "" {
		return nil, &entity.ValidationError{Field: "region", Message: "is required"}
	}

	published := true
	if in.Published != nil {
		published = *in.Published
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	art := &entity.Article{
		Title:       in.Title,
		Summary:     in.Summary,
		Content:     in.Content,
		Category:    in.Category,
		Region:      in.Region,
		Tags:        tags,
		Author:      in.Author,
		ImageURL:    in.ImageURL,
		Published:   published,
		PublishedAt: in.PublishedAt,
		Deleted:     false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if published && art.PublishedAt == nil {
		art.PublishedAt = &now
	}

	if _, err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	metrics.RecordArticleMutation("create")
	return art, nil
}

// Get retrieves a single published, non-deleted article by its ID.
// Returns ErrArticleNotFound if no matching live document exists.
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*entity.Article, error) {
	art, err := s.Repo.GetPublished(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// List returns published, non-deleted articles matching the filter, newest
// publication first. A nil limit falls back to DefaultPublicLimit; an explicit
// limit outside [1, MaxPublicLimit] is rejected with a ValidationError, so a
// client-supplied 0 is an error rather than a silent default.
func (s *Service) List(ctx context.Context, filter repository.ArticleListFilter) ([]*entity.Article, error) {
	if filter.Limit == nil {
		def := int64(DefaultPublicLimit)
		filter.Limit = &def
	}
	if *filter.Limit < 1 || *filter.Limit > MaxPublicLimit {
		return nil, &entity.ValidationError{
			Field:   "limit",
			Message: fmt.Sprintf("must be between 1 and %d", MaxPublicLimit),
		}
	}

	articles, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// ListAdmin returns non-deleted articles including unpublished ones, most
// recently updated first. A nil limit falls back to DefaultAdminLimit;
// explicit limits outside [1, MaxAdminLimit] are rejected.
func (s *Service) ListAdmin(ctx context.Context, filter repository.ArticleAdminFilter) ([]*entity.Article, error) {
	if filter.Limit == nil {
		def := int64(DefaultAdminLimit)
		filter.Limit = &def
	}
	if *filter.Limit < 1 || *filter.Limit > MaxAdminLimit {
		return nil, &entity.ValidationError{
			Field:   "limit",
			Message: fmt.Sprintf("must be between 1 and %d", MaxAdminLimit),
		}
	}

	articles, err := s.Repo.ListAdmin(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list admin articles: %w", err)
	}
	return articles, nil
}

// Update applies a sparse patch to an existing article and returns the updated
// document. The patch is merged field by field against the stored record;
// flipping published to true stamps published_at exactly once.
// Returns ErrEmptyUpdate for an empty patch and ErrArticleNotFound if the
// article does not exist or is soft-deleted.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	if in.isEmpty() {
		return nil, ErrEmptyUpdate
	}

	art, err := s.Repo.GetLive(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, &entity.ValidationError{Field: "title", Message: "cannot be empty"}
		}
		art.Title = *in.Title
	}
	if in.Summary != nil {
		art.Summary = *in.Summary
	}
	if in.Content != nil {
		if *in.Content == "" {
			return nil, &entity.ValidationError{Field: "content", Message: "cannot be empty"}
		}
		art.Content = *in.Content
	}
	if in.Category != nil {
		if *in.Category == "" {
			return nil, &entity.ValidationError{Field: "category", Message: "cannot be empty"}
		}
		art.Category = *in.Category
	}
	if in.Region != nil {
		if *in.Region == "" {
			return nil, &entity.ValidationError{Field: "region", Message: "cannot be empty"}
		}
		art.Region = *in.Region
	}
	if in.Tags != nil {
		art.Tags = *in.Tags
	}
	if in.Author != nil {
		art.Author = *in.Author
	}
	if in.ImageURL != nil {
		art.ImageURL = *in.ImageURL
	}

	now := time.Now().UTC()
	if in.Published != nil {
		art.Published = *in.Published
		// published_atは最初の公開時にのみ設定される
		if *in.Published && art.PublishedAt == nil {
			art.PublishedAt = &now
		}
	}
	art.UpdatedAt = now

	matched, err := s.Repo.Update(ctx, art)
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	if !matched {
		return nil, ErrArticleNotFound
	}
	metrics.RecordArticleMutation("update")
	return art, nil
}

// Delete soft-deletes an article: the deleted flag is set and published is
// forced to false, so the document disappears from every listing while
// remaining in the store. Returns ErrArticleNotFound if no document matched.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	matched, err := s.Repo.SoftDelete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if !matched {
		return ErrArticleNotFound
	}
	metrics.RecordArticleMutation("delete")
	return nil
}
