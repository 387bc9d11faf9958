package docview

// Home is the root of the documentation tree, or a package grouping several
// libraries. The top-level Home is named HomeAddress.
type Home struct {
	item

	packageName string
	children    []Item
}

// NewHome builds the top-level Home from a manifest record. Libraries
// without a package name become direct children; libraries sharing a
// package name are grouped under a package Home. Library children are
// placeholders until loaded.
func NewHome(rec Record) (*Home, error) {
	if !rec.Has("libraries") {
		return nil, Errorf(EMALFORMED, "manifest has no libraries")
	}

	h := &Home{
		item: item{
			name:          HomeAddress,
			qualifiedName: HomeAddress,
			comment:       rec.String("introduction"),
			loaded:        true,
		},
	}

	var packages []string
	grouped := make(map[string][]Record)
	for _, lib := range rec.Records("libraries") {
		pkg := lib.String("packageName")
		if pkg == "" {
			h.children = append(h.children, NewLibrary(lib, "", HomeAddress))
			continue
		}
		if _, ok := grouped[pkg]; !ok {
			packages = append(packages, pkg)
		}
		grouped[pkg] = append(grouped[pkg], lib)
	}
	for _, pkg := range packages {
		h.children = append(h.children, newPackageHome(pkg, grouped[pkg]))
	}
	SortItems(h.children)
	return h, nil
}

func newPackageHome(pkg string, libraries []Record) *Home {
	h := &Home{
		item: item{
			name:          pkg,
			qualifiedName: pkg,
			loaded:        true,
		},
		packageName: pkg,
	}
	address := h.Location().WithoutAnchor()
	for _, lib := range libraries {
		h.children = append(h.children, NewLibrary(lib, pkg, address))
	}
	SortItems(h.children)
	return h
}

func (h *Home) Kind() Kind { return KindHome }

// IsTopLevel reports whether h is the root of the tree.
func (h *Home) IsTopLevel() bool {
	return h.packageName == ""
}

// PackageName returns the package a package Home groups, or "".
func (h *Home) PackageName() string {
	return h.packageName
}

// Location is "home" for the root and "pkg/" for a package.
func (h *Home) Location() Location {
	if h.IsTopLevel() {
		return Location{Library: HomeAddress}
	}
	return Location{Package: h.packageName}
}

// Children returns libraries and package Homes in display order.
func (h *Home) Children() []Item {
	return h.children
}

// Libraries returns the direct library children.
func (h *Home) Libraries() []*Library {
	var out []*Library
	for _, c := range h.children {
		if lib, ok := c.(*Library); ok {
			out = append(out, lib)
		}
	}
	return out
}

// MemberNamed finds a direct child by name or qualified name. Colons and
// dashes in library names are interchangeable.
func (h *Home) MemberNamed(name string, fallback Item) Item {
	want := NormalizeLibraryName(name)
	for _, c := range h.children {
		if NormalizeLibraryName(c.Name()) == want || NormalizeLibraryName(c.QualifiedName()) == want {
			return c
		}
	}
	return fallback
}

// LibraryNamed searches this Home and its package Homes for a library by
// name. It returns nil when none matches.
func (h *Home) LibraryNamed(name string) *Library {
	if lib, ok := h.MemberNamed(name, nil).(*Library); ok {
		return lib
	}
	for _, c := range h.children {
		if pkg, ok := c.(*Home); ok {
			if lib := pkg.LibraryNamed(name); lib != nil {
				return lib
			}
		}
	}
	return nil
}

// AddToHierarchy registers h and its children. Only the top-level Home
// claims the empty address.
func (h *Home) AddToHierarchy(idx *Index) {
	if h.IsTopLevel() {
		idx.Register("", h)
		idx.Register(HomeAddress, h)
	} else {
		idx.Register(h.Location().WithoutAnchor(), h)
	}
	for _, c := range h.children {
		c.AddToHierarchy(idx)
	}
}
