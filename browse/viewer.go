package browse

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/docview"
)

// Ensure Viewer implements docview.Navigator at compile time.
var _ docview.Navigator = (*Viewer)(nil)

// Viewer is one browsing session: the page on display, the location
// within it and the member filter.
//
// Navigations are not cancelled when a newer one starts. Whichever
// finishes last decides the current page.
type Viewer struct {
	loader   *Loader
	resolver *Resolver

	mu     sync.Mutex
	page   docview.Item
	loc    docview.Location
	filter docview.Filter
}

// NewViewer creates a Viewer. Call Start before navigating.
func NewViewer(loader *Loader) *Viewer {
	return &Viewer{
		loader:   loader,
		resolver: NewResolver(loader),
	}
}

// Start loads the manifest and displays the Home.
func (v *Viewer) Start(ctx context.Context) error {
	h, err := v.loader.LoadHome(ctx)
	if err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page, v.loc = h, h.Location()
	return nil
}

// HandleLink navigates to the address in the fragment of rawURI. A URI
// without a fragment is taken as a bare address. It reports false when the
// session has not been started.
func (v *Viewer) HandleLink(ctx context.Context, rawURI string) (bool, error) {
	loc := docview.ParseLocation(addressOf(rawURI))
	if _, err := v.resolver.GetItem(ctx, loc.AsMemberOrSubMemberNotAnchor()); err != nil {
		return false, err
	}

	page, at := v.resolver.Resolve(v.CurrentPage(), loc)
	if page == nil {
		return false, nil
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page, v.loc = page, at
	return true, nil
}

func addressOf(rawURI string) string {
	if !strings.Contains(rawURI, "#") {
		return rawURI
	}
	u, err := url.Parse(rawURI)
	if err != nil {
		_, fragment, _ := strings.Cut(rawURI, "#")
		return fragment
	}
	return u.Fragment
}

// CurrentPage returns the page on display, or nil before Start.
func (v *Viewer) CurrentPage() docview.Item {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

// CurrentLocation returns the location on display.
func (v *Viewer) CurrentLocation() docview.Location {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loc
}

// Filter returns the member filter.
func (v *Viewer) Filter() docview.Filter {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

// SetFilter replaces the member filter.
func (v *Viewer) SetFilter(f docview.Filter) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = f
}

// Path returns the breadcrumbs of the current page.
func (v *Viewer) Path() []docview.Item {
	page := v.CurrentPage()
	if page == nil {
		return nil
	}
	return v.loader.Index().Path(page)
}

// Search returns search index entries matching prefix, loading the index
// on first use.
func (v *Viewer) Search(ctx context.Context, prefix string, limit int) ([]docview.SearchResult, error) {
	x, err := v.loader.LoadSearchIndex(ctx)
	if err != nil {
		return nil, err
	}
	return x.Search(prefix, limit), nil
}
