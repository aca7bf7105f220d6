package project

import (
	"encoding/json"
	"net/http"

	"newsdesk/internal/handler/http/respond"
	projUC "newsdesk/internal/usecase/project"
)

type CreateHandler struct{ Svc projUC.Service }

// ServeHTTP creates a new portfolio project and returns the stored document.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Link        string   `json:"link"`
		Tags        []string `json:"tags"`
		Status      string   `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	proj, err := h.Svc.Create(r.Context(), projUC.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Link:        req.Link,
		Tags:        req.Tags,
		Status:      req.Status,
	})
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(proj))
}
