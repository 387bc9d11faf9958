package docview

// Kind tags the closed set of entity variants.
type Kind int

// Entity kinds.
const (
	KindHome Kind = iota
	KindLibrary
	KindClass
	KindMethod
	KindVariable
	KindTypedef
	KindParameter
)

var kindNames = [...]string{
	KindHome:      "home",
	KindLibrary:   "library",
	KindClass:     "class",
	KindMethod:    "method",
	KindVariable:  "variable",
	KindTypedef:   "typedef",
	KindParameter: "parameter",
}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsPage reports whether entities of this kind are displayed as a page of
// their own rather than as an anchor inside another page.
func (k Kind) IsPage() bool {
	return k == KindHome || k == KindLibrary || k == KindClass
}

// Item is the capability set shared by every documentation entity.
//
// The set of implementations is closed: Home, Library, Class, Method,
// Variable, Typedef and Parameter. Cross references between items are
// addresses resolved through an Index, never pointers.
type Item interface {
	Kind() Kind

	// Name is the simple name used for member lookup.
	Name() string

	// DisplayName is the decorated name shown to readers, for example
	// "operator +" or "String.fromCharCodes".
	DisplayName() string

	// QualifiedName is the globally unique address. It never changes.
	QualifiedName() string

	// Comment is the HTML-safe documentation comment.
	Comment() string

	// Preview is a short summary, empty when the payload has none.
	Preview() string

	// Location is where the item is displayed.
	Location() Location

	// AnchorLocation is the address that scrolls to the item within the
	// page that displays it. Pages anchor to themselves.
	AnchorLocation() Location

	// IsLoaded is permanently true once the item's data is populated.
	IsLoaded() bool

	// InheritedFrom is the address of the member this one was inherited
	// from, or "" for members declared in place.
	InheritedFrom() string

	// IsInherited reports whether InheritedFrom is set.
	IsInherited() bool

	// MemberNamed looks up a direct child by simple name and returns
	// fallback when there is none.
	MemberNamed(name string, fallback Item) Item

	// AddToHierarchy registers the item and its loaded descendants in idx.
	// Calling it more than once is harmless.
	AddToHierarchy(idx *Index)

	base() *item
}

// item holds the fields common to every entity.
type item struct {
	name          string
	qualifiedName string
	comment       string
	preview       string
	loaded        bool
}

func newItem(rec Record) item {
	return item{
		name:          rec.String("name"),
		qualifiedName: rec.String("qualifiedName"),
		comment:       rec.String("comment"),
		preview:       rec.String("preview"),
	}
}

func (it *item) base() *item { return it }

func (it *item) Name() string          { return it.name }
func (it *item) DisplayName() string   { return it.name }
func (it *item) QualifiedName() string { return it.qualifiedName }
func (it *item) Comment() string       { return it.comment }
func (it *item) Preview() string       { return it.preview }
func (it *item) IsLoaded() bool        { return it.loaded }
func (it *item) InheritedFrom() string { return "" }
func (it *item) IsInherited() bool     { return false }

func (it *item) Location() Location {
	return ParseLocation(it.qualifiedName)
}

func (it *item) AnchorLocation() Location {
	return ParseLocation(it.qualifiedName)
}

// memberAnchor is the anchor location of a member displayed on owner's page.
func memberAnchor(owner, name string) Location {
	return ParseLocation(owner).Anchored(ToHash(name))
}
