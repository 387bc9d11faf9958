package browse_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/browse"
	"github.com/fwojciec/docview/goquery"
	"github.com/fwojciec/docview/mock"
	"github.com/fwojciec/docview/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classNamed(t *testing.T, l *browse.Loader, lib *docview.Library, name string) *docview.Class {
	t.Helper()
	require.NoError(t, l.LoadLibrary(context.Background(), lib))
	c, ok := lib.MemberNamed(name, nil).(*docview.Class)
	require.True(t, ok, name)
	return c
}

func TestLoader_LoadHome(t *testing.T) {
	t.Parallel()

	t.Run("fetches the manifest once", func(t *testing.T) {
		t.Parallel()

		f := newFetcher()
		l := newLoader(f)

		h1, err := l.LoadHome(context.Background())
		require.NoError(t, err)
		h2, err := l.LoadHome(context.Background())
		require.NoError(t, err)

		assert.Same(t, h1, h2)
		assert.Same(t, h1, l.Home())
		assert.Equal(t, 1, f.count("library_list.json"))
		assert.Same(t, h1, l.Index().Lookup(docview.HomeAddress, nil))
	})

	t.Run("reports an undecodable manifest as unavailable", func(t *testing.T) {
		t.Parallel()

		dec := &mock.Decoder{
			DecodeFn: func(string) (docview.Record, error) {
				return docview.Record{}, docview.Errorf(docview.EMALFORMED, "not a mapping")
			},
		}
		l := browse.NewLoader(newFetcher(), dec, docview.NewIndex())

		_, err := l.LoadHome(context.Background())

		require.Error(t, err)
		assert.Equal(t, docview.EUNAVAILABLE, docview.ErrorCode(err))
		assert.Contains(t, docview.ErrorMessage(err), "not a mapping")
	})

	t.Run("reports an unavailable manifest", func(t *testing.T) {
		t.Parallel()

		f := newFetcher()
		f.failWith("library_list.json", errors.New("connection refused"))
		l := newLoader(f)

		_, err := l.LoadHome(context.Background())

		require.Error(t, err)
		assert.Equal(t, docview.EUNAVAILABLE, docview.ErrorCode(err))
		assert.Contains(t, docview.ErrorMessage(err), "connection refused")
		assert.Nil(t, l.Home())
	})
}

func TestLoader_LoadLibrary(t *testing.T) {
	t.Parallel()

	t.Run("loads once", func(t *testing.T) {
		t.Parallel()

		f := newFetcher()
		l := newLoader(f)
		h, err := l.LoadHome(context.Background())
		require.NoError(t, err)
		lib := h.LibraryNamed("dart-core")

		require.NoError(t, l.LoadLibrary(context.Background(), lib))
		require.NoError(t, l.LoadLibrary(context.Background(), lib))

		assert.True(t, lib.IsLoaded())
		assert.Equal(t, 1, f.count("dart-core.json"))
		assert.NotNil(t, l.Index().Lookup("dart-core.String", nil))
	})

	t.Run("concurrent loads share one fetch", func(t *testing.T) {
		t.Parallel()

		f := newFetcher()
		l := newLoader(f)
		h, err := l.LoadHome(context.Background())
		require.NoError(t, err)
		lib := h.LibraryNamed("dart-core")

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, l.LoadLibrary(context.Background(), lib))
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, f.count("dart-core.json"))
	})

	t.Run("failure leaves the library unloaded until a retry succeeds", func(t *testing.T) {
		t.Parallel()

		f := newFetcher()
		l := newLoader(f)
		h, err := l.LoadHome(context.Background())
		require.NoError(t, err)
		lib := h.LibraryNamed("dart-core")

		f.failWith("dart-core.json", errors.New("timeout"))
		err = l.LoadLibrary(context.Background(), lib)
		require.Error(t, err)
		assert.Equal(t, docview.EUNAVAILABLE, docview.ErrorCode(err))
		assert.False(t, lib.IsLoaded())
		assert.Nil(t, l.Index().Lookup("dart-core.String", nil))

		f.failWith("dart-core.json", nil)
		require.NoError(t, l.LoadLibrary(context.Background(), lib))
		assert.True(t, lib.IsLoaded())
	})

	t.Run("asks the comment parser only for commented records", func(t *testing.T) {
		t.Parallel()

		f := newFetcher()
		l := browse.NewLoader(f, yaml.NewDecoder(), docview.NewIndex())
		var parsed []string
		l.Comments = &mock.CommentParser{
			PreviewFn: func(html string) string {
				parsed = append(parsed, html)
				return "preview"
			},
		}
		h, err := l.LoadHome(context.Background())
		require.NoError(t, err)
		c := classNamed(t, l, h.LibraryNamed("dart-core"), "String")
		require.Empty(t, parsed)

		require.NoError(t, l.LoadClass(context.Background(), c))

		assert.Equal(t, "preview", c.Preview())
		assert.ElementsMatch(t, []string{"<p>A string.</p><p>Details.</p>", "<p>The length.</p>"}, parsed)
	})

	t.Run("fills in previews from comments", func(t *testing.T) {
		t.Parallel()

		f := newFetcher()
		l := newLoader(f)
		l.Comments = goquery.NewCommentParser()
		h, err := l.LoadHome(context.Background())
		require.NoError(t, err)

		c := classNamed(t, l, h.LibraryNamed("dart-core"), "String")
		require.NoError(t, l.LoadClass(context.Background(), c))

		assert.Equal(t, "<p>A string.</p>", c.Preview())
		assert.Equal(t, "<p>The length.</p>", c.MemberNamed("length", nil).Preview())
	})
}

func TestLoader_LoadClass(t *testing.T) {
	t.Parallel()

	t.Run("Object superclass triggers no extra load", func(t *testing.T) {
		t.Parallel()

		f := newFetcher()
		l := newLoader(f)
		h, err := l.LoadHome(context.Background())
		require.NoError(t, err)
		c := classNamed(t, l, h.LibraryNamed("dart-core"), "String")

		before := f.total()
		require.NoError(t, l.LoadClass(context.Background(), c))

		assert.Equal(t, 0, f.count("dart-core.Object.json"))
		assert.Equal(t, 1, f.count("dart-core.String.json"))
		// String itself plus its two interfaces.
		assert.Equal(t, before+3, f.total())
	})

	t.Run("non-Object superclass triggers exactly one load", func(t *testing.T) {
		t.Parallel()

		f := newFetcher()
		l := newLoader(f)
		h, err := l.LoadHome(context.Background())
		require.NoError(t, err)
		c := classNamed(t, l, h.LibraryNamed("dart-core"), "Runes")

		before := f.total()
		require.NoError(t, l.LoadClass(context.Background(), c))

		assert.Equal(t, 1, f.count("dart-core.Iterable.json"))
		assert.Equal(t, before+2, f.total())
		assert.ElementsMatch(t, []string{"first", "last"}, memberNames(c.InstanceVariables()))
		assert.Equal(t, "dart-core.Iterable.map", c.MemberNamed("map", nil).InheritedFrom())
	})

	t.Run("interfaces are merged", func(t *testing.T) {
		t.Parallel()

		f := newFetcher()
		l := newLoader(f)
		h, err := l.LoadHome(context.Background())
		require.NoError(t, err)
		c := classNamed(t, l, h.LibraryNamed("dart-core"), "String")

		require.NoError(t, l.LoadClass(context.Background(), c))

		assert.ElementsMatch(t, []string{"trim", "compareTo", "allMatches"}, memberNames(c.InstanceMethods()))
		assert.Equal(t, 2, c.Methods().InheritedCount())
		assert.NotNil(t, l.Index().Lookup("dart-core.String.compareTo", nil))
	})

	t.Run("loading twice fetches nothing more", func(t *testing.T) {
		t.Parallel()

		f := newFetcher()
		l := newLoader(f)
		h, err := l.LoadHome(context.Background())
		require.NoError(t, err)
		c := classNamed(t, l, h.LibraryNamed("dart-core"), "Runes")
		require.NoError(t, l.LoadClass(context.Background(), c))

		before := f.total()
		require.NoError(t, l.LoadClass(context.Background(), c))

		assert.Equal(t, before, f.total())
		assert.Equal(t, 1, c.Variables().InheritedCount())
	})

	t.Run("superclass in another library loads that library", func(t *testing.T) {
		t.Parallel()

		f := newFetcher()
		l := newLoader(f)
		h, err := l.LoadHome(context.Background())
		require.NoError(t, err)
		c := classNamed(t, l, h.LibraryNamed("dart-collection"), "LinkedList")

		require.NoError(t, l.LoadClass(context.Background(), c))

		assert.Equal(t, 1, f.count("dart-core.json"))
		assert.Equal(t, 1, f.count("dart-core.Iterable.json"))
		assert.NotNil(t, c.MemberNamed("map", nil))
	})

	t.Run("inheritance cycles terminate", func(t *testing.T) {
		t.Parallel()

		f := newFetcher()
		l := newLoader(f)
		h, err := l.LoadHome(context.Background())
		require.NoError(t, err)
		c := classNamed(t, l, h.LibraryNamed("dart-core"), "Ping")

		require.NoError(t, l.LoadClass(context.Background(), c))

		assert.NotNil(t, c.MemberNamed("pong", nil))
		assert.Equal(t, 1, f.count("dart-core.Pong.json"))
	})

	t.Run("unavailable interface fails the load", func(t *testing.T) {
		t.Parallel()

		f := newFetcher()
		f.failWith("dart-core.Pattern.json", errors.New("boom"))
		l := newLoader(f)
		h, err := l.LoadHome(context.Background())
		require.NoError(t, err)
		c := classNamed(t, l, h.LibraryNamed("dart-core"), "String")

		err = l.LoadClass(context.Background(), c)

		require.Error(t, err)
		assert.Equal(t, docview.EUNAVAILABLE, docview.ErrorCode(err))
	})
}

func TestLoader_LoadSearchIndex(t *testing.T) {
	t.Parallel()

	f := newFetcher()
	l := newLoader(f)

	x, err := l.LoadSearchIndex(context.Background())
	require.NoError(t, err)
	again, err := l.LoadSearchIndex(context.Background())
	require.NoError(t, err)

	assert.Same(t, x, again)
	assert.Equal(t, 3, x.Len())
	assert.Equal(t, 1, f.count("index.json"))
}

func memberNames(c *docview.Category) []string {
	var out []string
	for _, it := range c.Content() {
		out = append(out, it.Name())
	}
	return out
}
