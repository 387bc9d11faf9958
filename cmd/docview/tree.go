package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docview"
)

// Run executes the tree command.
func (c *TreeCmd) Run(deps *Dependencies) error {
	home, err := deps.Loader.LoadHome(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docview.ErrorMessage(err))
		return err
	}

	var walk func(h *docview.Home, depth int)
	walk = func(h *docview.Home, depth int) {
		indent := strings.Repeat("  ", depth)
		for _, child := range h.Children() {
			fmt.Fprintf(deps.Stdout, "%s%s  #%s\n", indent, child.DisplayName(), child.Location().WithoutAnchor())
			if pkg, ok := child.(*docview.Home); ok {
				walk(pkg, depth+1)
			}
		}
	}
	walk(home, 0)
	return nil
}
