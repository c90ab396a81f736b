package mock

import (
	"context"

	"github.com/fwojciec/ao3"
)

var _ ao3.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of ao3.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, req *ao3.FetchRequest) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, req *ao3.FetchRequest) (string, error) {
	return f.FetchFn(ctx, req)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
