package mock

import "github.com/fwojciec/ao3"

var _ ao3.Parser = (*Parser)(nil)

// Parser is a mock implementation of ao3.Parser.
type Parser struct {
	ParseFn func(html string) (ao3.DocumentQuery, error)
}

func (p *Parser) Parse(html string) (ao3.DocumentQuery, error) {
	return p.ParseFn(html)
}
