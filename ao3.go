// Package ao3 extracts structured metadata from Archive of Our Own pages.
// It fetches tag feed and work pages, parses them into a queryable tree and
// reads titles, bylines, word counts, fandoms and other fields from fixed
// CSS selectors.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gofeed/, http/).
package ao3
