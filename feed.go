package ao3

import "strings"

// WorksFeed is a parsed tag works listing.
type WorksFeed struct {
	q DocumentQuery
}

// NewWorksFeed wraps a parsed document as a works listing.
func NewWorksFeed(q DocumentQuery) *WorksFeed {
	return &WorksFeed{q: q}
}

// TagID returns the internal tag identifier from the listing's RSS link,
// e.g. "/tags/12345/feed.atom" yields "12345". It reports false when the
// link or the identifier segment is missing.
func (f *WorksFeed) TagID() (string, bool) {
	nodes := f.q.Select(".rss")
	if len(nodes) == 0 {
		return "", false
	}
	href, ok := nodes[0].Attr("href")
	if !ok {
		return "", false
	}
	parts := strings.Split(href, "/")
	if len(parts) < 3 || parts[2] == "" {
		return "", false
	}
	return parts[2], true
}
