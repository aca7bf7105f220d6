package article

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/repository"
	artUC "newsdesk/internal/usecase/article"
)

type AdminListHandler struct {
	Svc    artUC.Service
	Logger *slog.Logger
}

// ServeHTTP lists articles including unpublished drafts, newest update
// first. Soft-deleted documents stay hidden here too.
func (h AdminListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repository.ArticleAdminFilter{Query: q.Get("q")}

	if raw := q.Get("published"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest, fmt.Errorf("published must be true or false"))
			return
		}
		filter.Published = &v
	}

	limit, err := parseLimit(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	filter.Limit = limit

	arts, err := h.Svc.ListAdmin(r.Context(), filter)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTOs(arts))
}
