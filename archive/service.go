// Package archive composes a fetcher and a parser into an ao3.PageService.
package archive

import (
	"context"

	"github.com/fwojciec/ao3"
)

// Ensure Service implements ao3.PageService at compile time.
var _ ao3.PageService = (*Service)(nil)

// Service fetches archive pages and wraps the parsed documents.
type Service struct {
	Fetcher ao3.Fetcher
	Parser  ao3.Parser

	// BaseURL overrides ao3.BaseURL, e.g. for a mirror or a test server.
	BaseURL string
}

// NewService creates a Service against the public archive.
func NewService(fetcher ao3.Fetcher, parser ao3.Parser) *Service {
	return &Service{
		Fetcher: fetcher,
		Parser:  parser,
		BaseURL: ao3.BaseURL,
	}
}

// WorksFeed fetches the works listing of the named tag.
func (s *Service) WorksFeed(ctx context.Context, tagName string) (*ao3.WorksFeed, error) {
	doc, err := s.fetch(ctx, &ao3.FetchRequest{
		URL: ao3.TagURLAt(s.baseURL(), tagName) + "/works",
	})
	if err != nil {
		return nil, err
	}
	return ao3.NewWorksFeed(doc), nil
}

// WorkPage fetches a work page. The adult content cookie is always sent so
// the metadata block is served instead of the interstitial.
func (s *Service) WorkPage(ctx context.Context, workID string) (*ao3.WorkPage, error) {
	doc, err := s.fetch(ctx, &ao3.FetchRequest{
		URL:    ao3.WorkURLAt(s.baseURL(), ao3.WorkURLParams{WorkID: workID}),
		Header: map[string]string{"Cookie": ao3.AdultCookie},
	})
	if err != nil {
		return nil, err
	}
	return ao3.NewWorkPage(doc), nil
}

func (s *Service) fetch(ctx context.Context, req *ao3.FetchRequest) (ao3.DocumentQuery, error) {
	html, err := s.Fetcher.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.Parser.Parse(html)
}

func (s *Service) baseURL() string {
	if s.BaseURL == "" {
		return ao3.BaseURL
	}
	return s.BaseURL
}
