package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/ao3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Run executes the work command. Works are fetched concurrently and
// printed in argument order once all of them have been extracted.
func (c *WorkCmd) Run(deps *Dependencies) error {
	limit := rate.Inf
	if c.Rate > 0 {
		limit = rate.Limit(c.Rate)
	}
	limiter := rate.NewLimiter(limit, 1)

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	works := make([]*ao3.Work, len(c.IDs))
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)

	for i, id := range c.IDs {
		g.Go(func() error {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}

			page, err := deps.Pages.WorkPage(ctx, id)
			if err != nil {
				return fmt.Errorf("work %s: %w", id, err)
			}

			w, err := ao3.ExtractWork(id, page)
			if err != nil {
				return fmt.Errorf("work %s: %w", id, err)
			}

			if c.Markdown && w.SummaryHTML != "" {
				md, err := deps.Converter.Convert(w.SummaryHTML)
				if err != nil {
					return fmt.Errorf("work %s: %w", id, err)
				}
				w.Summary = md
			}

			works[i] = w
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	for _, w := range works {
		if err := enc.Encode(w); err != nil {
			return err
		}
	}
	return nil
}
