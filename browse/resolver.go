package browse

import (
	"context"

	"github.com/fwojciec/docview"
)

// Resolver maps requested addresses to the page and location to display.
type Resolver struct {
	loader *Loader
}

// NewResolver creates a Resolver over the items loaded by loader.
func NewResolver(loader *Loader) *Resolver {
	return &Resolver{loader: loader}
}

// Resolve returns the page and location to show when loc is requested
// while page is displayed:
//
//   - library names may use a colon or a dash ("dart:core", "dart-core");
//   - the empty address and the home address show the start page;
//   - an address of a page shows that page;
//   - an unknown address is retried with its parent;
//   - a member of the displayed page is shown as an anchor on that page;
//   - any other member is shown on its nearest page with loc unchanged.
//
// It returns a nil page only before the Home has been loaded.
func (r *Resolver) Resolve(page docview.Item, loc docview.Location) (docview.Item, docview.Location) {
	start := r.loader.Home()
	if start == nil {
		return nil, docview.Location{}
	}
	idx := r.loader.Index()
	loc.Library = docview.NormalizeLibraryName(loc.Library)
	for {
		if loc.IsEmpty() || (loc.Package == "" && loc.WithoutAnchor() == docview.HomeAddress) {
			return start, start.Location()
		}

		it := idx.LookupLocation(loc)
		if it == nil {
			loc = loc.ParentLocation()
			continue
		}

		usable := idx.NearestPage(loc)
		if usable == nil {
			return start, start.Location()
		}
		if usable == it {
			return it, loc
		}
		if page != nil && usable == idx.NearestPage(page.Location()) {
			return usable, usable.Location().Anchored(docview.ToHash(it.Name()))
		}
		return usable, loc
	}
}

// GetItem loads the items along loc and returns them in order: the
// library, then the member, then the sub-member. A library is looked up by
// address and then by name. The result stops at the first part that does
// not resolve; lookup misses are not errors.
func (r *Resolver) GetItem(ctx context.Context, loc docview.Location) ([]docview.Item, error) {
	if loc.Library == "" || loc.Library == docview.HomeAddress {
		return nil, nil
	}
	lib := r.loader.LibraryFor(loc)
	if lib == nil {
		return nil, nil
	}
	if err := r.loader.LoadLibrary(ctx, lib); err != nil {
		return nil, err
	}
	items := []docview.Item{lib}
	if loc.Member == "" {
		return items, nil
	}

	var member docview.Item
	r.loader.View(func() { member = lib.MemberNamed(loc.Member, nil) })
	if member == nil {
		return items, nil
	}
	if c, ok := member.(*docview.Class); ok {
		if err := r.loader.LoadClass(ctx, c); err != nil {
			return items, err
		}
	}
	items = append(items, member)
	if loc.SubMember == "" {
		return items, nil
	}

	var sub docview.Item
	r.loader.View(func() { sub = member.MemberNamed(loc.SubMember, nil) })
	if sub != nil {
		items = append(items, sub)
	}
	return items, nil
}
