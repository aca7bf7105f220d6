package project

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	projUC "newsdesk/internal/usecase/project"
)

type UpdateHandler struct{ Svc projUC.Service }

// ServeHTTP applies a sparse patch to an existing project. An entirely empty
// patch is rejected with 400.
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractObjectID(r.URL.Path, "/api/projects/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Name        *string   `json:"name"`
		Description *string   `json:"description"`
		Link        *string   `json:"link"`
		Tags        *[]string `json:"tags"`
		Status      *string   `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	proj, err := h.Svc.Update(r.Context(), projUC.UpdateInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Link:        req.Link,
		Tags:        req.Tags,
		Status:      req.Status,
	})
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, projUC.ErrProjectNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(proj))
}
