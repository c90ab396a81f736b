package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ao3"
)

// Ensure LoggingPageService implements ao3.PageService.
var _ ao3.PageService = (*LoggingPageService)(nil)

// LoggingPageService wraps a PageService with logging.
type LoggingPageService struct {
	next   ao3.PageService
	logger *slog.Logger
}

// NewLoggingPageService creates a new LoggingPageService.
func NewLoggingPageService(next ao3.PageService, logger *slog.Logger) *LoggingPageService {
	return &LoggingPageService{next: next, logger: logger}
}

// WorksFeed delegates to the wrapped service and logs the operation.
func (s *LoggingPageService) WorksFeed(ctx context.Context, tagName string) (feed *ao3.WorksFeed, err error) {
	defer func(begin time.Time) {
		s.logger.Info("works feed",
			"tag", tagName,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WorksFeed(ctx, tagName)
}

// WorkPage delegates to the wrapped service and logs the operation.
func (s *LoggingPageService) WorkPage(ctx context.Context, workID string) (page *ao3.WorkPage, err error) {
	defer func(begin time.Time) {
		s.logger.Info("work page",
			"work", workID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WorkPage(ctx, workID)
}

// Ensure LoggingFeedService implements ao3.FeedService.
var _ ao3.FeedService = (*LoggingFeedService)(nil)

// LoggingFeedService wraps a FeedService with logging.
type LoggingFeedService struct {
	next   ao3.FeedService
	logger *slog.Logger
}

// NewLoggingFeedService creates a new LoggingFeedService.
func NewLoggingFeedService(next ao3.FeedService, logger *slog.Logger) *LoggingFeedService {
	return &LoggingFeedService{next: next, logger: logger}
}

// Entries delegates to the wrapped service and logs the operation.
func (s *LoggingFeedService) Entries(ctx context.Context, tagID string) (entries []*ao3.FeedEntry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("tag feed",
			"tag_id", tagID,
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Entries(ctx, tagID)
}
