package docview_test

import (
	"testing"

	"github.com/fwojciec/docview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHome(t *testing.T) {
	t.Parallel()

	t.Run("libraries without package are direct children", func(t *testing.T) {
		t.Parallel()

		h, err := docview.NewHome(record(t, `{"libraries": [
			{"name": "dart:html", "qualifiedName": "dart-html"},
			{"name": "dart:core", "qualifiedName": "dart-core"}
		]}`))
		require.NoError(t, err)

		require.Len(t, h.Children(), 2)
		assert.Equal(t, []string{"dart:core", "dart:html"}, names(h.Children()))
		assert.Len(t, h.Libraries(), 2)

		lib, ok := h.MemberNamed("dart-core", nil).(*docview.Library)
		require.True(t, ok)
		assert.Equal(t, "dart-core", lib.QualifiedName())
		assert.Same(t, lib, h.MemberNamed("dart:core", nil))
		assert.True(t, h.IsLoaded())
		assert.True(t, h.IsTopLevel())
		assert.Equal(t, docview.HomeAddress, h.Location().String())
	})

	t.Run("libraries sharing a package are grouped", func(t *testing.T) {
		t.Parallel()

		h, err := docview.NewHome(record(t, `{"libraries": [
			{"name": "polymer", "packageName": "polymer"},
			{"name": "dart:core"},
			{"name": "polymer.deserialize", "packageName": "polymer"}
		]}`))
		require.NoError(t, err)

		require.Len(t, h.Children(), 2)
		pkg, ok := h.Children()[1].(*docview.Home)
		require.True(t, ok)
		assert.False(t, pkg.IsTopLevel())
		assert.Equal(t, "polymer", pkg.PackageName())
		assert.Equal(t, "polymer/", pkg.Location().String())
		assert.Len(t, pkg.Libraries(), 2)

		lib := h.LibraryNamed("polymer.deserialize")
		require.NotNil(t, lib)
		assert.Equal(t, "polymer", lib.PackageName())
		assert.Equal(t, "polymer/", lib.Home())
		assert.Equal(t, "polymer/polymer.deserialize", lib.Location().String())
		assert.Nil(t, h.LibraryNamed("missing"))
	})

	t.Run("registers under the empty address and home", func(t *testing.T) {
		t.Parallel()

		h, err := docview.NewHome(record(t, `{"libraries": [
			{"name": "dart:core"},
			{"name": "polymer", "packageName": "polymer"}
		]}`))
		require.NoError(t, err)

		idx := docview.NewIndex()
		h.AddToHierarchy(idx)
		h.AddToHierarchy(idx)

		assert.Same(t, h, idx.Lookup("", nil))
		assert.Same(t, h, idx.Lookup(docview.HomeAddress, nil))
		assert.IsType(t, &docview.Home{}, idx.Lookup("polymer/", nil))
		assert.IsType(t, &docview.Library{}, idx.Lookup("dart-core", nil))
		assert.IsType(t, &docview.Library{}, idx.Lookup("polymer/polymer", nil))
	})

	t.Run("rejects a manifest without libraries", func(t *testing.T) {
		t.Parallel()

		_, err := docview.NewHome(record(t, `{"introduction": "hi"}`))
		require.Error(t, err)
		assert.Equal(t, docview.EMALFORMED, docview.ErrorCode(err))
	})
}
