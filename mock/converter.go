package mock

import "github.com/fwojciec/ao3"

var _ ao3.Converter = (*Converter)(nil)

// Converter is a mock implementation of ao3.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
