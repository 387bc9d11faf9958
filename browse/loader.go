// Package browse loads documentation payloads on demand and resolves
// navigation requests against the loaded model.
package browse

import (
	"context"
	"slices"
	"sync"

	"github.com/fwojciec/docview"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Loader hydrates placeholders from their payloads and registers them in
// the session's Index.
//
// Fetches run without holding the session lock. Every mutation of the
// model happens while holding it, so loads may be issued concurrently.
type Loader struct {
	fetcher docview.Fetcher
	decoder docview.Decoder
	index   *docview.Index

	// Extension is appended to every payload path.
	Extension string

	// Comments, if set, fills in previews that payloads omit.
	Comments docview.CommentParser

	mu       sync.Mutex
	group    singleflight.Group
	home     *docview.Home
	search   *docview.SearchIndex
	resolved map[string]bool
}

// NewLoader creates a Loader registering into idx.
func NewLoader(fetcher docview.Fetcher, decoder docview.Decoder, idx *docview.Index) *Loader {
	return &Loader{
		fetcher:   fetcher,
		decoder:   decoder,
		index:     idx,
		Extension: docview.DefaultExtension,
		resolved:  make(map[string]bool),
	}
}

// Index returns the session index.
func (l *Loader) Index() *docview.Index {
	return l.index
}

// Home returns the loaded Home, or nil before LoadHome succeeds.
func (l *Loader) Home() *docview.Home {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.home
}

// View runs fn while holding the session lock. Use it to read categories
// of items that may be loading concurrently.
func (l *Loader) View(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn()
}

// LoadHome fetches the manifest and builds the Home and its library
// placeholders. Later calls return the same Home.
func (l *Loader) LoadHome(ctx context.Context) (*docview.Home, error) {
	if h := l.Home(); h != nil {
		return h, nil
	}
	path := docview.ManifestName + l.Extension
	v, err, _ := l.group.Do(path, func() (any, error) {
		if h := l.Home(); h != nil {
			return h, nil
		}
		rec, err := l.fetch(ctx, path)
		if err != nil {
			return nil, err
		}
		h, err := docview.NewHome(rec)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		defer l.mu.Unlock()
		h.AddToHierarchy(l.index)
		l.home = h
		return h, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*docview.Home), nil
}

// LoadSearchIndex fetches the search index. Later calls return the same
// index.
func (l *Loader) LoadSearchIndex(ctx context.Context) (*docview.SearchIndex, error) {
	path := docview.SearchIndexName + l.Extension
	v, err, _ := l.group.Do(path, func() (any, error) {
		l.mu.Lock()
		x := l.search
		l.mu.Unlock()
		if x != nil {
			return x, nil
		}
		rec, err := l.fetch(ctx, path)
		if err != nil {
			return nil, err
		}
		x = docview.NewSearchIndex(rec)
		l.mu.Lock()
		l.search = x
		l.mu.Unlock()
		return x, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*docview.SearchIndex), nil
}

// LoadLibrary loads lib and registers its members. It is a no-op when lib
// is already loaded; concurrent calls share one fetch.
func (l *Loader) LoadLibrary(ctx context.Context, lib *docview.Library) error {
	return l.loadPage(ctx, lib, func(rec docview.Record) error {
		return lib.Load(rec, l.index)
	})
}

// LoadClass loads c, then every interface it implements in parallel, then
// its superclass unless that is the root object type, and finally merges
// the ancestors' members into c. Ancestors whose library is unknown are
// skipped.
func (l *Loader) LoadClass(ctx context.Context, c *docview.Class) error {
	return l.loadClass(ctx, c, nil)
}

func (l *Loader) loadClass(ctx context.Context, c *docview.Class, chain []string) error {
	qn := c.QualifiedName()
	if slices.Contains(chain, qn) {
		return nil
	}
	chain = append(slices.Clone(chain), qn)

	if err := l.loadPage(ctx, c, func(rec docview.Record) error {
		return c.Load(rec, l.index)
	}); err != nil {
		return err
	}

	l.mu.Lock()
	done := l.resolved[qn]
	interfaces := c.Interfaces()
	superclass := c.Superclass()
	l.mu.Unlock()
	if done {
		return nil
	}

	ancestors := make([]*docview.Class, len(interfaces))
	g, gctx := errgroup.WithContext(ctx)
	for i, t := range interfaces {
		g.Go(func() error {
			a, err := l.loadType(gctx, t, chain)
			ancestors[i] = a
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var super *docview.Class
	if superclass != nil && !superclass.IsObject() {
		var err error
		if super, err = l.loadType(ctx, *superclass, chain); err != nil {
			return err
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.resolved[qn] {
		return nil
	}
	if super != nil {
		c.Inherit(super, l.index)
	}
	for _, a := range ancestors {
		if a != nil {
			c.Inherit(a, l.index)
		}
	}
	l.resolved[qn] = true
	return nil
}

// loadType loads the class a type refers to, loading its library first if
// needed. It returns nil when the type does not name a known class.
func (l *Loader) loadType(ctx context.Context, t docview.LinkableType, chain []string) (*docview.Class, error) {
	loc := t.Location()
	it := l.index.LookupLocation(loc)
	if it == nil {
		lib := l.LibraryFor(loc)
		if lib == nil {
			return nil, nil
		}
		if err := l.LoadLibrary(ctx, lib); err != nil {
			return nil, err
		}
		it = l.index.LookupLocation(loc)
	}
	c, ok := it.(*docview.Class)
	if !ok {
		return nil, nil
	}
	if err := l.loadClass(ctx, c, chain); err != nil {
		return nil, err
	}
	return c, nil
}

// LibraryFor returns the library loc points into. The index is consulted
// first; when it misses, the Home is searched by name so that display
// names and storage names both match. Returns nil when nothing matches.
func (l *Loader) LibraryFor(loc docview.Location) *docview.Library {
	if loc.Library == "" {
		return nil
	}
	at := docview.Location{Package: loc.Package, Library: loc.Library}
	if lib, ok := l.index.LookupLocation(at).(*docview.Library); ok {
		return lib
	}
	if lib, ok := l.index.Lookup(docview.NormalizeLibraryName(loc.Library), nil).(*docview.Library); ok {
		return lib
	}
	h := l.Home()
	if h == nil {
		return nil
	}
	return h.LibraryNamed(loc.Library)
}

// loadPage fetches the payload of a page item and applies load to it under
// the session lock, unless the item is already loaded.
func (l *Loader) loadPage(ctx context.Context, it docview.Item, load func(docview.Record) error) error {
	if l.isLoaded(it) {
		return nil
	}
	path := docview.PayloadPath(it.Location(), l.Extension)
	_, err, _ := l.group.Do(path, func() (any, error) {
		if l.isLoaded(it) {
			return nil, nil
		}
		rec, err := l.fetch(ctx, path)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		defer l.mu.Unlock()
		return nil, load(rec)
	})
	return err
}

func (l *Loader) isLoaded(it docview.Item) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return it.IsLoaded()
}

// fetch retrieves and decodes a payload. Both failures are reported as
// EUNAVAILABLE.
func (l *Loader) fetch(ctx context.Context, path string) (docview.Record, error) {
	raw, err := l.fetcher.Fetch(ctx, path)
	if err != nil {
		return docview.Record{}, docview.Errorf(docview.EUNAVAILABLE, "fetch %s: %s", path, describe(err))
	}
	rec, err := l.decoder.Decode(raw)
	if err != nil {
		return docview.Record{}, docview.Errorf(docview.EUNAVAILABLE, "decode %s: %s", path, describe(err))
	}
	if l.Comments != nil {
		rec, _ = withPreviews(rec, l.Comments).(docview.Record)
	}
	return rec, nil
}

// withPreviews sets "preview" on every record that has a comment but no
// preview.
func withPreviews(v any, p docview.CommentParser) any {
	switch v := v.(type) {
	case docview.Record:
		for _, k := range v.Keys() {
			v.Set(k, withPreviews(v.Value(k), p))
		}
		if c := v.String("comment"); c != "" && v.String("preview") == "" {
			v.Set("preview", p.Preview(c))
		}
		return v
	case []any:
		for i := range v {
			v[i] = withPreviews(v[i], p)
		}
		return v
	}
	return v
}

func describe(err error) string {
	if docview.ErrorCode(err) == docview.EINTERNAL {
		return err.Error()
	}
	return docview.ErrorMessage(err)
}
