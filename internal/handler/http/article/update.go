package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type UpdateHandler struct{ Svc artUC.Service }

// ServeHTTP applies a sparse patch to an existing article and returns the
// updated document. Only fields present and non-null in the body change.
// An entirely empty patch is rejected with 400.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractObjectID(r.URL.Path, "/api/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title     *string   `json:"title"`
		Summary   *string   `json:"summary"`
		Content   *string   `json:"content"`
		Category  *string   `json:"category"`
		Region    *string   `json:"region"`
		Tags      *[]string `json:"tags"`
		Author    *string   `json:"author"`
		ImageURL  *string   `json:"image_url"`
		Published *bool     `json:"published"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:        id,
		Title:     req.Title,
		Summary:   req.Summary,
		Content:   req.Content,
		Category:  req.Category,
		Region:    req.Region,
		Tags:      req.Tags,
		Author:    req.Author,
		ImageURL:  req.ImageURL,
		Published: req.Published,
	})
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, artUC.ErrArticleNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(art))
}
