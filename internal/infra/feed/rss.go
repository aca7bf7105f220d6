// Package feed provides the RSS/Atom fetching implementation for feed previews.
// It uses the gofeed library behind a circuit breaker so a misbehaving
// upstream cannot tie up every preview request.
package feed

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/sony/gobreaker"

	feedUC "newsdesk/internal/usecase/feed"
)

// ErrUpstreamUnavailable is returned while the circuit breaker is open.
var ErrUpstreamUnavailable = errors.New("feed upstream temporarily unavailable")

// RSSFetcher implements feed.Fetcher using the gofeed library.
// Each fetch is a single attempt; the breaker only short-circuits after
// repeated upstream failures.
type RSSFetcher struct {
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewRSSFetcher creates a new RSSFetcher with the given HTTP client.
func NewRSSFetcher(client *http.Client) *RSSFetcher {
	return &RSSFetcher{
		client: client,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "feed-preview",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				slog.Warn("feed fetch circuit breaker state change",
					slog.String("service", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()))
			},
		}),
	}
}

// Fetch retrieves and parses an RSS/Atom feed from the given URL.
func (f *RSSFetcher) Fetch(ctx context.Context, feedURL string) (*feedUC.Preview, error) {
	result, err := f.breaker.Execute(func() (interface{}, error) {
		return f.doFetch(ctx, feedURL)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			slog.Warn("feed fetch rejected by circuit breaker",
				slog.String("url", feedURL),
				slog.String("state", f.breaker.State().String()))
			return nil, ErrUpstreamUnavailable
		}
		return nil, err
	}
	return result.(*feedUC.Preview), nil
}

// doFetch performs the actual fetch and field mapping.
func (f *RSSFetcher) doFetch(ctx context.Context, feedURL string) (*feedUC.Preview, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "NewsdeskPreviewBot"
	fp.Client = f.client

	parsed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	items := make([]feedUC.Item, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		// summaryが空の場合はContentで代替
		summary := it.Description
		if summary == "" {
			summary = it.Content
		}
		published := it.Published
		if published == "" {
			published = it.Updated
		}
		items = append(items, feedUC.Item{
			Title:     it.Title,
			Summary:   summary,
			Link:      it.Link,
			Published: published,
		})
	}

	return &feedUC.Preview{
		FeedTitle: parsed.Title,
		Items:     items,
	}, nil
}
