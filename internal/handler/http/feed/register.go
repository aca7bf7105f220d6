package feed

import (
	"log/slog"
	"net/http"

	feedUC "newsdesk/internal/usecase/feed"
)

// Register registers the feed preview endpoint. The route is public; the URL
// validator and the per-IP rate limiter bound what it can be made to fetch.
func Register(mux *http.ServeMux, svc feedUC.Service, logger *slog.Logger) {
	mux.Handle("POST   /api/rss/preview", PreviewHandler{Svc: svc, Logger: logger})
}
