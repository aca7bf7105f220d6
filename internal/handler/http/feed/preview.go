// Package feed exposes the RSS/Atom preview endpoint. A preview fetches and
// parses an external feed on demand without persisting anything.
package feed

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/metrics"
	feedUC "newsdesk/internal/usecase/feed"
)

// itemDTO is one feed entry on the wire.
type itemDTO struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Link      string `json:"link"`
	Published string `json:"published"`
}

type previewResponse struct {
	FeedTitle string    `json:"feed_title"`
	Items     []itemDTO `json:"items"`
}

type PreviewHandler struct {
	Svc    feedUC.Service
	Logger *slog.Logger
}

// ServeHTTP fetches an external feed and returns its title plus a bounded
// number of entries. Classification hints (tag, region, category) are accepted
// for forward compatibility but not used yet.
func (h PreviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL      string `json:"url"`
		MaxItems int    `json:"max_items"`
		Tag      string `json:"tag"`
		Region   string `json:"region"`
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if req.MaxItems == 0 {
		req.MaxItems = feedUC.DefaultMaxItems
	}

	preview, err := h.Svc.Preview(r.Context(), req.URL, req.MaxItems)
	if err != nil {
		metrics.RecordFeedPreview(false)
		if h.Logger != nil {
			h.Logger.WarnContext(r.Context(), "feed preview failed",
				slog.String("url", req.URL),
				slog.String("error", err.Error()),
			)
		}
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	metrics.RecordFeedPreview(true)

	items := make([]itemDTO, 0, len(preview.Items))
	for _, it := range preview.Items {
		items = append(items, itemDTO{
			Title:     it.Title,
			Summary:   it.Summary,
			Link:      it.Link,
			Published: it.Published,
		})
	}

	respond.JSON(w, http.StatusOK, previewResponse{
		FeedTitle: preview.FeedTitle,
		Items:     items,
	})
}
