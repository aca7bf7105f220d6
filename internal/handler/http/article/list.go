package article

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/repository"
	artUC "newsdesk/internal/usecase/article"
)

// parseLimit reads an optional integer limit query parameter. Absent maps to
// nil so the service applies its default; an explicit value is passed through
// untouched and range-checked by the service, including an explicit 0.
func parseLimit(r *http.Request) (*int64, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return nil, nil
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.New("limit must be an integer")
	}
	return &limit, nil
}

type ListHandler struct {
	Svc    artUC.Service
	Logger *slog.Logger
}

// ServeHTTP lists published, non-deleted articles, newest publication first.
// Optional query parameters: q (free-text), region, category, tag, limit.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	limit, err := parseLimit(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	q := r.URL.Query()
	filter := repository.ArticleListFilter{
		Query:    q.Get("q"),
		Region:   q.Get("region"),
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
		Limit:    limit,
	}

	articles, err := h.Svc.List(ctx, filter)
	if err != nil {
		logger.Warn("article list failed",
			slog.String("query", q.Get("q")),
			slog.Any("error", err))
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(articles))
}
