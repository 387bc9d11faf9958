package docview

import "context"

// Navigator holds the state of one browsing session.
type Navigator interface {
	// HandleLink navigates to the address in the fragment of rawURI.
	// It reports whether a destination was resolved. An unresolvable
	// address degrades to the nearest resolvable ancestor and finally to
	// the start page. Returns EUNAVAILABLE if a payload could not be loaded.
	HandleLink(ctx context.Context, rawURI string) (bool, error)

	// CurrentPage returns the page being displayed.
	CurrentPage() Item

	// CurrentLocation returns the location being displayed, which may be
	// anchored at a member of CurrentPage.
	CurrentLocation() Location
}
