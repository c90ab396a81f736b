// Package gofeed implements ao3.FeedService by parsing tag Atom feeds with
// github.com/mmcdole/gofeed.
package gofeed

import (
	"context"
	"regexp"

	"github.com/fwojciec/ao3"
	"github.com/mmcdole/gofeed"
)

// Ensure FeedReader implements ao3.FeedService at compile time.
var _ ao3.FeedService = (*FeedReader)(nil)

var workLinkPattern = regexp.MustCompile(`/works/([^/?#]+)`)

// FeedReader fetches tag feeds through a Fetcher and parses them.
type FeedReader struct {
	fetcher ao3.Fetcher
	parser  *gofeed.Parser

	// BaseURL overrides ao3.BaseURL, e.g. for a mirror or a test server.
	BaseURL string
}

// NewFeedReader creates a FeedReader against the public archive.
func NewFeedReader(fetcher ao3.Fetcher) *FeedReader {
	return &FeedReader{
		fetcher: fetcher,
		parser:  gofeed.NewParser(),
		BaseURL: ao3.BaseURL,
	}
}

// Entries returns the works listed in the tag's feed in feed order.
// Items that do not link to a work are skipped.
func (r *FeedReader) Entries(ctx context.Context, tagID string) ([]*ao3.FeedEntry, error) {
	base := r.BaseURL
	if base == "" {
		base = ao3.BaseURL
	}

	body, err := r.fetcher.Fetch(ctx, &ao3.FetchRequest{URL: ao3.TagFeedURLAt(base, tagID)})
	if err != nil {
		return nil, err
	}

	feed, err := r.parser.ParseString(body)
	if err != nil {
		return nil, ao3.Errorf(ao3.EINVALID, "failed to parse feed for tag %s: %v", tagID, err)
	}

	entries := make([]*ao3.FeedEntry, 0, len(feed.Items))
	for _, item := range feed.Items {
		link := itemLink(item)
		m := workLinkPattern.FindStringSubmatch(link)
		if m == nil {
			continue
		}

		entry := &ao3.FeedEntry{
			WorkID:  m[1],
			Title:   item.Title,
			URL:     link,
			Authors: []string{},
		}
		for _, a := range item.Authors {
			if a != nil && a.Name != "" {
				entry.Authors = append(entry.Authors, a.Name)
			}
		}
		if item.UpdatedParsed != nil {
			entry.Updated = *item.UpdatedParsed
		} else if item.PublishedParsed != nil {
			entry.Updated = *item.PublishedParsed
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// itemLink returns the first link of item that points at a work.
func itemLink(item *gofeed.Item) string {
	if workLinkPattern.MatchString(item.Link) {
		return item.Link
	}
	for _, l := range item.Links {
		if workLinkPattern.MatchString(l) {
			return l
		}
	}
	return item.Link
}
