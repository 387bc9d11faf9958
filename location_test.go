package docview_test

import (
	"testing"

	"github.com/fwojciec/docview"
	"github.com/stretchr/testify/assert"
)

func TestParseLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want docview.Location
	}{
		{"mylib.MyClass.myMethod@id_param", docview.Location{Library: "mylib", Member: "MyClass", SubMember: "myMethod", Anchor: "id_param"}},
		{"#dart-core.String", docview.Location{Library: "dart-core", Member: "String"}},
		{"dart:core", docview.Location{Library: "dart:core"}},
		{"polymer/polymer.PolymerElement", docview.Location{Package: "polymer", Library: "polymer", Member: "PolymerElement"}},
		{"polymer/", docview.Location{Package: "polymer"}},
		{"dart-core.num.+", docview.Location{Library: "dart-core", Member: "num", SubMember: "+"}},
		{"dart-core.List.[]=", docview.Location{Library: "dart-core", Member: "List", SubMember: "[]="}},
		{"dart-core.Map@id_putIfAbsent,1.2", docview.Location{Library: "dart-core", Member: "Map", Anchor: "id_putIfAbsent,1.2"}},
		{"home", docview.Location{Library: "home"}},
		{"", docview.Location{}},
		{"dart-core.String!!junk", docview.Location{Library: "dart-core", Member: "String"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, docview.ParseLocation(tt.raw))
		})
	}
}

func TestLocation_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"mylib.MyClass.myMethod@id_param",
		"polymer/polymer.PolymerElement.attached",
		"polymer/",
		"dart-core.num.+",
		"dart-core@id_print",
		"home",
		"",
	} {
		t.Run(raw, func(t *testing.T) {
			t.Parallel()

			loc := docview.ParseLocation(raw)
			assert.Equal(t, loc, docview.ParseLocation(loc.String()))
			assert.True(t, loc.Equal(docview.ParseLocation(loc.String())))
		})
	}
}

func TestLocation_ParentLocation(t *testing.T) {
	t.Parallel()

	loc := docview.ParseLocation("polymer/polymer.Element.attached@id_x")

	var got []string
	for !loc.IsEmpty() {
		loc = loc.ParentLocation()
		got = append(got, loc.String())
	}
	assert.Equal(t, []string{
		"polymer/polymer.Element.attached",
		"polymer/polymer.Element",
		"polymer/polymer",
		"polymer/",
		"",
	}, got)
	assert.True(t, docview.Location{}.ParentLocation().IsEmpty())
}

func TestLocation_QualifiedName(t *testing.T) {
	t.Parallel()

	loc := docview.ParseLocation("polymer/polymer.Element@id_x")

	assert.Equal(t, "polymer.Element", loc.QualifiedName())
	assert.Equal(t, "polymer/polymer.Element", loc.WithoutAnchor())
	assert.Equal(t, "polymer/polymer.Element@id_y", loc.Anchored("id_y").String())
}

func TestLocation_AsMemberOrSubMemberNotAnchor(t *testing.T) {
	t.Parallel()

	t.Run("moves the anchor into the member slot", func(t *testing.T) {
		t.Parallel()
		loc := docview.ParseLocation("dart-core@" + docview.ToHash("print"))
		assert.Equal(t, docview.Location{Library: "dart-core", Member: "print"}, loc.AsMemberOrSubMemberNotAnchor())
	})

	t.Run("moves the anchor into the sub-member slot", func(t *testing.T) {
		t.Parallel()
		loc := docview.ParseLocation("dart-core.num@" + docview.ToHash("+"))
		assert.Equal(t, docview.Location{Library: "dart-core", Member: "num", SubMember: "+"}, loc.AsMemberOrSubMemberNotAnchor())
	})

	t.Run("leaves a location without anchor alone", func(t *testing.T) {
		t.Parallel()
		loc := docview.ParseLocation("dart-core.num")
		assert.Equal(t, loc, loc.AsMemberOrSubMemberNotAnchor())
	})
}

func TestToHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"length", "id_length"},
		{"+", "id_-2b-"},
		{"[]=", "id_-5b--5d--3d-"},
		{"length=", "id_length-3d-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hash := docview.ToHash(tt.name)
			assert.Equal(t, tt.want, hash)
			assert.Equal(t, tt.name, docview.FromHash(hash))
			assert.Equal(t, docview.Location{Library: "lib", Anchor: hash}, docview.ParseLocation("lib@"+hash))
		})
	}
}

func TestFromHash_WithoutPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "summary", docview.FromHash("summary"))
}

func TestNormalizeLibraryName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dart-core", docview.NormalizeLibraryName("dart:core"))
	assert.Equal(t, "polymer", docview.NormalizeLibraryName("polymer"))
}
