package project

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/repository"
	projUC "newsdesk/internal/usecase/project"
)

// parseLimit converts the limit query parameter. An absent parameter maps to
// nil so the use case applies its default; an explicit value, 0 included, is
// passed through for the use case to range-check.
func parseLimit(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("limit must be an integer")
	}
	return &limit, nil
}

type ListHandler struct {
	Svc    projUC.Service
	Logger *slog.Logger
}

// ServeHTTP lists projects filtered by tag and status, newest first.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := parseLimit(q.Get("limit"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	projects, err := h.Svc.List(r.Context(), repository.ProjectListFilter{
		Tag:    q.Get("tag"),
		Status: q.Get("status"),
		Limit:  limit,
	})
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(projects))
}
