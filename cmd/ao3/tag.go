package main

import (
	"fmt"

	"github.com/fwojciec/ao3"
)

// Run executes the tag command.
func (c *TagCmd) Run(deps *Dependencies) error {
	id, err := resolveTagID(deps, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, id)
	return nil
}

// resolveTagID looks up the internal ID of the named tag from its works listing.
func resolveTagID(deps *Dependencies, name string) (string, error) {
	feed, err := deps.Pages.WorksFeed(deps.Ctx, name)
	if err != nil {
		return "", err
	}
	id, ok := feed.TagID()
	if !ok {
		return "", ao3.Errorf(ao3.ENOTFOUND, "no feed link found for tag %q", name)
	}
	return id, nil
}
