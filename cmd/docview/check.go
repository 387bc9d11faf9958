package main

import (
	"fmt"

	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/walk"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	checker := walk.NewChecker(deps.Loader, deps.Comments)
	checker.Concurrency = c.Concurrency

	report, err := checker.Check(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docview.ErrorMessage(err))
		return err
	}

	for _, f := range report.Failures {
		fmt.Fprintf(deps.Stderr, "skip %s: %s\n", f.Address, docview.ErrorMessage(f.Err))
	}
	for _, p := range report.Problems {
		fmt.Fprintf(deps.Stdout, "%s: unresolved %s reference %s\n", p.Address, p.Kind, p.Reference)
	}
	fmt.Fprintf(deps.Stdout, "Checked %d pages, %d items: %d broken references, %d failed pages\n",
		report.Visited, report.Items, len(report.Problems), len(report.Failures))

	if len(report.Problems) > 0 || len(report.Failures) > 0 {
		return docview.Errorf(docview.EINVALID, "%d broken references, %d failed pages", len(report.Problems), len(report.Failures))
	}
	return nil
}
