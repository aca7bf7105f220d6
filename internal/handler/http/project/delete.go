package project

import (
	"errors"
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	projUC "newsdesk/internal/usecase/project"
)

type DeleteHandler struct{ Svc projUC.Service }

// ServeHTTP removes a project permanently. Unlike articles there is no soft
// delete; the document is gone after this call.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractObjectID(r.URL.Path, "/api/projects/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, projUC.ErrProjectNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
