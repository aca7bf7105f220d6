package project

import (
	"time"

	"newsdesk/internal/domain/entity"
)

// DTO is the JSON shape of a project on the wire. Timestamps are RFC3339.
type DTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func toDTO(p *entity.Project) DTO {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return DTO{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		Link:        p.Link,
		Tags:        tags,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

func toDTOs(projects []*entity.Project) []DTO {
	out := make([]DTO, 0, len(projects))
	for _, p := range projects {
		out = append(out, toDTO(p))
	}
	return out
}
