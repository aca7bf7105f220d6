package project

import (
	"log/slog"
	"net/http"

	"newsdesk/internal/handler/http/auth"
	projUC "newsdesk/internal/usecase/project"
)

// Register registers all project-related HTTP handlers with the given mux.
// Listing is public; create, update, and delete require the admin token.
func Register(mux *http.ServeMux, svc projUC.Service, gate *auth.Gate, logger *slog.Logger) {
	mux.Handle("GET    /api/projects", ListHandler{Svc: svc, Logger: logger})

	mux.Handle("POST   /api/projects", gate.Require(CreateHandler{svc}))
	mux.Handle("PUT    /api/projects/", gate.Require(UpdateHandler{svc}))
	mux.Handle("DELETE /api/projects/", gate.Require(DeleteHandler{svc}))
}
