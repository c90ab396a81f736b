package ao3

import (
	"context"
	"time"
)

// PageService fetches and parses archive pages.
type PageService interface {
	// WorksFeed fetches the works listing of the named tag.
	WorksFeed(ctx context.Context, tagName string) (*WorksFeed, error)

	// WorkPage fetches a work page with the adult content cookie set.
	WorkPage(ctx context.Context, workID string) (*WorkPage, error)
}

// FeedEntry is a single work listed in a tag's Atom feed.
type FeedEntry struct {
	WorkID  string    `json:"work_id"`
	Title   string    `json:"title"`
	URL     string    `json:"url"`
	Authors []string  `json:"authors"`
	Updated time.Time `json:"updated"`
}

// FeedService reads the Atom feed the archive publishes for each tag.
type FeedService interface {
	// Entries returns the works in the feed of the tag with the given
	// internal ID, in feed order.
	Entries(ctx context.Context, tagID string) ([]*FeedEntry, error)
}
