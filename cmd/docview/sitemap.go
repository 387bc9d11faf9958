package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/etree"
	"github.com/fwojciec/docview/walk"
)

// Run executes the sitemap command.
func (c *SitemapCmd) Run(deps *Dependencies) error {
	sitemap, err := etree.NewSitemap(c.BaseURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docview.ErrorMessage(err))
		return err
	}

	report := &walk.Report{}
	if err := walk.NewChecker(deps.Loader, deps.Comments).Walk(deps.Ctx, report); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docview.ErrorMessage(err))
		return err
	}
	for _, f := range report.Failures {
		fmt.Fprintf(deps.Stderr, "skip %s: %s\n", f.Address, docview.ErrorMessage(f.Err))
	}

	var w io.Writer = deps.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		defer f.Close()
		w = f
	}
	return sitemap.Write(w, pageAddresses(deps.Loader.Index()))
}

// pageAddresses returns the canonical address of every registered page.
func pageAddresses(idx *docview.Index) []string {
	var out []string
	for _, address := range idx.Addresses() {
		it := idx.Lookup(address, nil)
		if it == nil || !it.Kind().IsPage() || it.Kind() == docview.KindHome {
			continue
		}
		if it.Location().WithoutAnchor() == address {
			out = append(out, address)
		}
	}
	return out
}
