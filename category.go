package docview

import (
	"cmp"
	"slices"
	"strings"
)

// Category names used by libraries and classes.
const (
	CategoryClasses         = "Classes"
	CategoryExceptions      = "Exceptions"
	CategoryTypedefs        = "Typedefs"
	CategoryVariables       = "Properties"
	CategoryFunctions       = "Functions"
	CategoryMethods         = "Methods"
	CategoryOperators       = "Operators"
	CategoryConstructors    = "Constructors"
	CategoryStaticVariables = "Static Properties"
	CategoryStaticMethods   = "Static Methods"
)

// Category is an ordered group of items sharing a role, such as a class's
// methods. It tracks how many of its members are inherited.
type Category struct {
	Name string

	content        []Item
	byName         map[string]Item
	count          int
	inheritedCount int
}

func newCategory(name string) *Category {
	return &Category{Name: name, byName: make(map[string]Item)}
}

// add appends an item declared in the payload.
func (c *Category) add(it Item) {
	c.content = append(c.content, it)
	if _, ok := c.byName[it.Name()]; !ok {
		c.byName[it.Name()] = it
	}
	c.count++
	if it.IsInherited() {
		c.inheritedCount++
	}
}

// NewClassCategory builds class placeholders from entries of a library's
// classes bucket. Each placeholder is loaded lazily from its own payload.
func NewClassCategory(name string, entries []Record, library Location) *Category {
	c := newCategory(name)
	for _, rec := range entries {
		c.add(NewClass(rec, library))
	}
	c.sort()
	return c
}

// NewVariableCategory merges variables with getters and setters into one
// category of properties owned by owner.
func NewVariableCategory(name string, variables, getters, setters []Record, owner string) (*Category, error) {
	c := newCategory(name)
	for _, rec := range variables {
		v, err := NewVariable(rec, owner)
		if err != nil {
			return nil, err
		}
		c.add(v)
	}
	for _, rec := range getters {
		v, err := NewAccessor(rec, owner, false)
		if err != nil {
			return nil, err
		}
		c.add(v)
	}
	for _, rec := range setters {
		v, err := NewAccessor(rec, owner, true)
		if err != nil {
			return nil, err
		}
		c.add(v)
	}
	c.sort()
	return c, nil
}

// NewFunctionCategory builds methods of the given kind from method records.
func NewFunctionCategory(name string, functions []Record, owner string, kind MethodKind) (*Category, error) {
	c := newCategory(name)
	for _, rec := range functions {
		m, err := NewMethod(rec, owner, kind)
		if err != nil {
			return nil, err
		}
		c.add(m)
	}
	c.sort()
	return c, nil
}

// NewTypedefCategory builds typedefs from typedef records.
func NewTypedefCategory(name string, typedefs []Record, owner string) (*Category, error) {
	c := newCategory(name)
	for _, rec := range typedefs {
		t, err := NewTypedef(rec, owner)
		if err != nil {
			return nil, err
		}
		c.add(t)
	}
	c.sort()
	return c, nil
}

// NewInstanceCategory keeps the non-static members.
func NewInstanceCategory(name string, members []Item) *Category {
	return filterCategory(name, members, false)
}

// NewStaticCategory keeps the static members.
func NewStaticCategory(name string, members []Item) *Category {
	return filterCategory(name, members, true)
}

type staticMember interface {
	IsStatic() bool
}

func filterCategory(name string, members []Item, static bool) *Category {
	c := newCategory(name)
	for _, it := range members {
		s, ok := it.(staticMember)
		if ok && s.IsStatic() == static {
			c.add(it)
		}
	}
	return c
}

// Content returns the members in display order.
func (c *Category) Content() []Item {
	if c == nil {
		return nil
	}
	return c.content
}

// Len returns the total member count, own and inherited.
func (c *Category) Len() int {
	if c == nil {
		return 0
	}
	return c.count
}

// InheritedCount returns the number of inherited members.
func (c *Category) InheritedCount() int {
	if c == nil {
		return 0
	}
	return c.inheritedCount
}

// HasNonInherited reports whether at least one member is declared in place.
func (c *Category) HasNonInherited() bool {
	return c.InheritedCount() < c.Len()
}

// MemberNamed returns the member with the given simple name, or fallback.
func (c *Category) MemberNamed(name string, fallback Item) Item {
	if c == nil {
		return fallback
	}
	if it, ok := c.byName[name]; ok {
		return it
	}
	return fallback
}

// commentInheritor is implemented by members that can take over a comment
// from the member they override.
type commentInheritor interface {
	InheritComment(from Item)
}

// AddInheritedItem adds a member inherited by definingClass. If a member
// with the same simple name is already present, only its comment is
// merged. Otherwise the item is appended, both counters grow, and the item
// is registered in idx under definingClass + "." + name. idx may be nil
// while a payload is still being decoded.
func (c *Category) AddInheritedItem(definingClass string, it Item, idx *Index) {
	if existing := c.MemberNamed(it.Name(), nil); existing != nil {
		if m, ok := existing.(commentInheritor); ok {
			m.InheritComment(it)
		}
		return
	}
	c.content = append(c.content, it)
	c.byName[it.Name()] = it
	c.count++
	c.inheritedCount++
	if idx != nil {
		idx.Register(definingClass+"."+it.Name(), it)
	}
}

// FilteredContent returns the members visible under f.
func (c *Category) FilteredContent(f Filter) []Item {
	if f.ShowsEverything() {
		return c.Content()
	}
	var out []Item
	for _, it := range c.Content() {
		if f.Visible(it) {
			out = append(out, it)
		}
	}
	return out
}

func (c *Category) sort() {
	SortItems(c.content)
}

// SortItems stable-sorts items by display name, except that names starting
// with CoreLibraryPrefix come first.
func SortItems(items []Item) {
	slices.SortStableFunc(items, func(a, b Item) int {
		ac, bc := isCore(a), isCore(b)
		if ac != bc {
			if ac {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.DisplayName(), b.DisplayName())
	})
}

func isCore(it Item) bool {
	return strings.HasPrefix(NormalizeLibraryName(it.Name()), CoreLibraryPrefix)
}
