package ao3

import (
	"net/url"
	"strings"
)

// BaseURL is the scheme and host of the archive.
const BaseURL = "https://archiveofourown.org"

// AdultCookie acknowledges the adult content interstitial. Without it the
// archive serves a modal in place of the work metadata for guests.
const AdultCookie = "view_adult=true;"

// WorkURLParams identifies a work, optionally scoped to a chapter or collection.
// Empty fields are treated as absent.
type WorkURLParams struct {
	WorkID         string
	ChapterID      string
	CollectionName string
}

// WorkURL builds the canonical URL of a work. Identifiers are interpolated
// as given.
func WorkURL(params WorkURLParams) string {
	return workURL(BaseURL, params)
}

// WorkURLAt is like WorkURL but builds the URL against the given base.
func WorkURLAt(base string, params WorkURLParams) string {
	return workURL(strings.TrimSuffix(base, "/"), params)
}

func workURL(base string, params WorkURLParams) string {
	u := base
	if params.CollectionName != "" {
		u += "/collections/" + params.CollectionName
	}
	u += "/works/" + params.WorkID
	if params.ChapterID != "" {
		u += "/chapters/" + params.ChapterID
	}
	return u
}

// tagEscaper rewrites the characters the archive cannot carry in a tag path.
var tagEscaper = strings.NewReplacer(
	"/", "*s*",
	"&", "*a*",
	".", "*d*",
	"?", "*q*",
	"#", "*h*",
)

// TagURL returns the landing page URL for the tag with the given name.
func TagURL(tagName string) string {
	return tagURL(BaseURL, tagName)
}

// TagURLAt is like TagURL but builds the URL against the given base.
func TagURLAt(base string, tagName string) string {
	return tagURL(strings.TrimSuffix(base, "/"), tagName)
}

func tagURL(base string, tagName string) string {
	segment := url.PathEscape(tagEscaper.Replace(tagName))
	segment = strings.ReplaceAll(segment, "%2A", "*")
	return base + "/tags/" + segment
}

// WorksFeedURL returns the URL of the works listing for a tag.
func WorksFeedURL(tagName string) string {
	return TagURL(tagName) + "/works"
}

// TagFeedURL returns the Atom feed URL for the tag with the given internal ID.
func TagFeedURL(tagID string) string {
	return TagFeedURLAt(BaseURL, tagID)
}

// TagFeedURLAt is like TagFeedURL but builds the URL against the given base.
func TagFeedURLAt(base string, tagID string) string {
	return strings.TrimSuffix(base, "/") + "/tags/" + tagID + "/feed.atom"
}
