package main

import (
	"fmt"

	"github.com/fwojciec/docview"
)

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
	results, err := deps.Viewer.Search(deps.Ctx, c.Prefix, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docview.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No addresses match %q.\n", c.Prefix)
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", r.Address, r.Kind)
	}
	return nil
}
