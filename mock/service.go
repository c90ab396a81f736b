package mock

import (
	"context"

	"github.com/fwojciec/ao3"
)

var _ ao3.PageService = (*PageService)(nil)

// PageService is a mock implementation of ao3.PageService.
type PageService struct {
	WorksFeedFn func(ctx context.Context, tagName string) (*ao3.WorksFeed, error)
	WorkPageFn  func(ctx context.Context, workID string) (*ao3.WorkPage, error)
}

func (s *PageService) WorksFeed(ctx context.Context, tagName string) (*ao3.WorksFeed, error) {
	return s.WorksFeedFn(ctx, tagName)
}

func (s *PageService) WorkPage(ctx context.Context, workID string) (*ao3.WorkPage, error) {
	return s.WorkPageFn(ctx, workID)
}

var _ ao3.FeedService = (*FeedService)(nil)

// FeedService is a mock implementation of ao3.FeedService.
type FeedService struct {
	EntriesFn func(ctx context.Context, tagID string) ([]*ao3.FeedEntry, error)
}

func (s *FeedService) Entries(ctx context.Context, tagID string) ([]*ao3.FeedEntry, error) {
	return s.EntriesFn(ctx, tagID)
}
