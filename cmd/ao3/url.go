package main

import (
	"fmt"

	"github.com/fwojciec/ao3"
)

// Run executes the url command.
func (c *URLCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, ao3.WorkURL(ao3.WorkURLParams{
		WorkID:         c.WorkID,
		ChapterID:      c.Chapter,
		CollectionName: c.Collection,
	}))
	return nil
}
