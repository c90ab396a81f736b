package ao3

import "context"

// FetchRequest describes a single page request.
type FetchRequest struct {
	URL string

	// Header holds extra request headers, e.g. {"Cookie": AdultCookie}.
	Header map[string]string
}

// Fetcher retrieves raw page bodies over HTTP.
type Fetcher interface {
	// Fetch issues a GET for the request and returns the response body.
	// A non-success status is an error; implementations never retry.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, req *FetchRequest) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
