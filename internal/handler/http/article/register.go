package article

import (
	"log/slog"
	"net/http"

	"newsdesk/internal/handler/http/auth"
	artUC "newsdesk/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// Write routes and the admin listing require the admin token via the auth
// gate; reads of published articles stay open.
func Register(mux *http.ServeMux, svc artUC.Service, gate *auth.Gate, logger *slog.Logger) {
	mux.Handle("GET    /api/articles", ListHandler{Svc: svc, Logger: logger})
	// 完全一致のパターンがプレフィックスより優先される
	mux.Handle("GET    /api/articles/admin", gate.Require(AdminListHandler{Svc: svc, Logger: logger}))
	mux.Handle("GET    /api/articles/", GetHandler{svc})

	mux.Handle("POST   /api/articles", gate.Require(CreateHandler{svc}))
	mux.Handle("PUT    /api/articles/", gate.Require(UpdateHandler{svc}))
	mux.Handle("DELETE /api/articles/", gate.Require(DeleteHandler{svc}))
}
