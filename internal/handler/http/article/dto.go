// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for creating, listing, fetching, updating, and
// soft-deleting articles, plus the admin listing.
package article

import (
	"time"

	"newsdesk/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary,omitempty"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	Region      string   `json:"region"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Published   bool     `json:"published"`
	PublishedAt string   `json:"published_at,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// toDTO converts an entity to its client-facing representation. The opaque
// document ID becomes a hex string and timestamps round-trip as RFC3339.
func toDTO(a *entity.Article) DTO {
	dto := DTO{
		ID:        a.ID.Hex(),
		Title:     a.Title,
		Summary:   a.Summary,
		Content:   a.Content,
		Category:  a.Category,
		Region:    a.Region,
		Tags:      a.Tags,
		Author:    a.Author,
		ImageURL:  a.ImageURL,
		Published: a.Published,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if dto.Tags == nil {
		dto.Tags = []string{}
	}
	if a.PublishedAt != nil {
		dto.PublishedAt = a.PublishedAt.UTC().Format(time.RFC3339)
	}
	return dto
}

// toDTOs converts a slice of entities, preserving order.
func toDTOs(articles []*entity.Article) []DTO {
	dtos := make([]DTO, 0, len(articles))
	for _, a := range articles {
		dtos = append(dtos, toDTO(a))
	}
	return dtos
}
