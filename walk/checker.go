// Package walk loads a whole documentation set and checks its cross
// references.
package walk

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/browse"
	"golang.org/x/sync/errgroup"
)

// Frontier sizing for a documentation set.
const (
	frontierExpectedAddresses = 100000
	frontierFalsePositiveRate = 0.0001
)

// Reference kinds reported by the Checker.
const (
	ReferenceComment = "comment"
	ReferenceType    = "type"
)

// Problem is a reference that does not resolve to any loaded item.
type Problem struct {
	// Address of the item holding the reference.
	Address string

	// Reference is the unresolved target address.
	Reference string

	// Kind is ReferenceComment or ReferenceType.
	Kind string
}

// Failure is a page that could not be loaded.
type Failure struct {
	Address string
	Err     error
}

// Report is the outcome of a check.
type Report struct {
	// Visited is the number of pages the walk loaded.
	Visited  int
	Items    int
	Problems []Problem
	Failures []Failure
}

// Checker walks every library and class of a documentation set, then
// reports comment links and type references that do not resolve.
type Checker struct {
	loader   *browse.Loader
	comments docview.CommentParser

	// Concurrency limits parallel page loads. Defaults to 10.
	Concurrency int
}

// NewChecker creates a Checker that loads pages through loader.
func NewChecker(loader *browse.Loader, comments docview.CommentParser) *Checker {
	return &Checker{loader: loader, comments: comments}
}

// Check loads the whole documentation set and checks it. Pages that fail
// to load are reported and skipped. It returns an error only if the
// manifest cannot be loaded or ctx is cancelled.
func (c *Checker) Check(ctx context.Context) (*Report, error) {
	report := &Report{}
	if err := c.Walk(ctx, report); err != nil {
		return nil, err
	}
	c.check(report)
	return report, nil
}

// Walk loads every library, then every class, level by level, recording
// the visits and failures in report.
func (c *Checker) Walk(ctx context.Context, report *Report) error {
	home, err := c.loader.LoadHome(ctx)
	if err != nil {
		return err
	}

	frontier := NewFrontier(frontierExpectedAddresses, frontierFalsePositiveRate)
	for _, lib := range libraries(home) {
		frontier.Push(lib.Location().WithoutAnchor())
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	var mu sync.Mutex
	for frontier.Len() > 0 {
		var level []string
		for {
			address, ok := frontier.Pop()
			if !ok {
				break
			}
			level = append(level, address)
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)
		for _, address := range level {
			g.Go(func() error {
				err := c.visit(gctx, address, frontier)
				mu.Lock()
				defer mu.Unlock()
				report.Visited++
				if err != nil {
					report.Failures = append(report.Failures, Failure{Address: address, Err: err})
				}
				return nil
			})
		}
		_ = g.Wait()
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	slices.SortFunc(report.Failures, func(a, b Failure) int {
		return strings.Compare(a.Address, b.Address)
	})
	return nil
}

// visit loads the page at address and queues the classes it declares.
func (c *Checker) visit(ctx context.Context, address string, frontier *Frontier) error {
	switch it := c.loader.Index().Lookup(address, nil).(type) {
	case *docview.Library:
		if err := c.loader.LoadLibrary(ctx, it); err != nil {
			return err
		}
		var classes []docview.Item
		c.loader.View(func() {
			classes = append(classes, it.Classes().Content()...)
			classes = append(classes, it.Exceptions().Content()...)
		})
		for _, class := range classes {
			frontier.Push(class.Location().WithoutAnchor())
		}
	case *docview.Class:
		return c.loader.LoadClass(ctx, it)
	}
	return nil
}

// check inspects every distinct registered item.
func (c *Checker) check(report *Report) {
	idx := c.loader.Index()
	seen := make(map[docview.Item]bool)
	problems := make(map[Problem]bool)

	add := func(it docview.Item, ref, kind string) {
		if ref == "" || resolves(idx, ref) {
			return
		}
		problems[Problem{Address: it.QualifiedName(), Reference: ref, Kind: kind}] = true
	}

	for _, address := range idx.Addresses() {
		it := idx.Lookup(address, nil)
		if it == nil || seen[it] {
			continue
		}
		seen[it] = true
		report.Items++

		if c.comments != nil {
			for _, ref := range c.comments.References(it.Comment()) {
				add(it, ref, ReferenceComment)
			}
		}
		for _, ref := range typeReferences(it) {
			if strings.Contains(ref, ".") {
				add(it, ref, ReferenceType)
			}
		}
	}

	for p := range problems {
		report.Problems = append(report.Problems, p)
	}
	slices.SortFunc(report.Problems, func(a, b Problem) int {
		return cmp.Or(
			strings.Compare(a.Address, b.Address),
			strings.Compare(a.Reference, b.Reference),
			strings.Compare(a.Kind, b.Kind),
		)
	})
}

// resolves reports whether ref names a registered item, either directly or
// as an anchor on one.
func resolves(idx *docview.Index, ref string) bool {
	loc := docview.ParseLocation(ref)
	if loc.IsEmpty() {
		return false
	}
	return idx.LookupLocation(loc) != nil
}

// typeReferences returns the type addresses mentioned by it. Addresses
// without a library part, such as type parameters, are included and left
// to the caller to skip.
func typeReferences(it docview.Item) []string {
	var refs []string
	params := func(ps []*docview.Parameter) {
		for _, p := range ps {
			refs = append(refs, p.Type().Addresses()...)
		}
	}
	switch it := it.(type) {
	case *docview.Class:
		if s := it.Superclass(); s != nil {
			refs = append(refs, s.Address)
		}
		for _, t := range it.Interfaces() {
			refs = append(refs, t.Address)
		}
	case *docview.Method:
		if !it.IsInherited() {
			refs = append(refs, it.ReturnType().Addresses()...)
			params(it.Parameters())
		}
	case *docview.Variable:
		if !it.IsInherited() {
			refs = append(refs, it.Type().Addresses()...)
		}
	case *docview.Typedef:
		refs = append(refs, it.ReturnType().Addresses()...)
		params(it.Parameters())
	}
	return refs
}

// libraries returns every library below h, including those grouped in
// package Homes.
func libraries(h *docview.Home) []*docview.Library {
	var out []*docview.Library
	for _, c := range h.Children() {
		switch c := c.(type) {
		case *docview.Library:
			out = append(out, c)
		case *docview.Home:
			out = append(out, libraries(c)...)
		}
	}
	return out
}
