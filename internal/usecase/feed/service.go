// Package feed provides the use case for previewing external RSS/Atom feeds.
// A preview is a pure read-through transformation: nothing is persisted.
package feed

import (
	"context"
	"errors"
	"fmt"

	"newsdesk/internal/domain/entity"
)

// ErrInvalidMaxItems indicates that the requested item cap is out of range.
var ErrInvalidMaxItems = errors.New("max_items must be between 1 and 50")

// maxItemCap bounds how many entries a single preview may return.
const maxItemCap = 50

// DefaultMaxItems is used when the caller does not supply an item cap.
const DefaultMaxItems = 10

// Item is one mapped feed entry.
type Item struct {
	Title     string
	Summary   string
	Link      string
	Published string
}

// Preview is the parsed, truncated view of an external feed.
type Preview struct {
	FeedTitle string
	Items     []Item
}

// Fetcher retrieves and parses an external feed.
type Fetcher interface {
	Fetch(ctx context.Context, feedURL string) (*Preview, error)
}

// Service provides the feed preview use case.
type Service struct {
	Fetcher Fetcher
}

// Preview fetches the feed at feedURL and returns at most maxItems entries.
// The URL is validated before any network round trip; fetch and parse failures
// surface to the caller with the parser's message.
func (s *Service) Preview(ctx context.Context, feedURL string, maxItems int) (*Preview, error) {
	if err := entity.ValidateFeedURL(feedURL); err != nil {
		return nil, fmt.Errorf("validate feed URL: %w", err)
	}
	if maxItems < 1 || maxItems > maxItemCap {
		return nil, ErrInvalidMaxItems
	}

	preview, err := s.Fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	if len(preview.Items) > maxItems {
		preview.Items = preview.Items[:maxItems]
	}
	return preview, nil
}
