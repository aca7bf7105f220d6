package article

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type CreateHandler struct{ Svc artUC.Service }

// ServeHTTP creates a new article and returns the stored document.
// Creating a published article stamps published_at unless the caller
// supplied one.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string   `json:"title"`
		Summary     string   `json:"summary"`
		Content     string   `json:"content"`
		Category    string   `json:"category"`
		Region      string   `json:"region"`
		Tags        []string `json:"tags"`
		Author      string   `json:"author"`
		ImageURL    string   `json:"image_url"`
		Published   *bool    `json:"published"`
		PublishedAt *string  `json:"published_at"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var pAt *time.Time
	if req.PublishedAt != nil && *req.PublishedAt != "" {
		t, err := time.Parse(time.RFC3339, *req.PublishedAt)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("published_at must be in RFC3339 format"))
			return
		}
		pAt = &t
	}

	art, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:       req.Title,
		Summary:     req.Summary,
		Content:     req.Content,
		Category:    req.Category,
		Region:      req.Region,
		Tags:        req.Tags,
		Author:      req.Author,
		ImageURL:    req.ImageURL,
		Published:   req.Published,
		PublishedAt: pAt,
	})
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(art))
}
