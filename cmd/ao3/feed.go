package main

import "fmt"

// Run executes the feed command.
func (c *FeedCmd) Run(deps *Dependencies) error {
	tagID := c.Tag
	if c.ByName {
		id, err := resolveTagID(deps, c.Tag)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
			return err
		}
		tagID = id
	}

	entries, err := deps.Feeds.Entries(deps.Ctx, tagID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintf(deps.Stdout, "No works found in feed for tag %s.\n", tagID)
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", e.WorkID, e.Title)
	}
	return nil
}
