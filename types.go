package docview

import "strings"

// LinkableType is a reference to a type by address. It is resolved through
// an Index when the target is needed, so a type may point at an entity that
// has not been loaded yet.
type LinkableType struct {
	Address string
}

// Location returns the parsed address.
func (t LinkableType) Location() Location {
	return ParseLocation(t.Address)
}

// SimpleType returns the last component of the address, for example
// "String" for "dart-core.String".
func (t LinkableType) SimpleType() string {
	loc := t.Location()
	switch {
	case loc.SubMember != "":
		return loc.SubMember
	case loc.Member != "":
		return loc.Member
	case loc.Library != "":
		return loc.Library
	}
	return t.Address
}

// IsObject reports whether the type is the universal root object type.
func (t LinkableType) IsObject() bool {
	return t.SimpleType() == ObjectName
}

// Resolve looks the target up in idx and returns nil when it is absent.
func (t LinkableType) Resolve(idx *Index) Item {
	return idx.Lookup(t.Address, nil)
}

// NestedType is a possibly generic type: an outer type applied to inner
// type arguments, as in List<String>.
type NestedType struct {
	Outer LinkableType
	Inner []*NestedType
}

// String renders the type with simple names, e.g. "Map<String, List<int>>".
func (n *NestedType) String() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(n.Outer.SimpleType())
	if len(n.Inner) > 0 {
		b.WriteString("<")
		for i, inner := range n.Inner {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(inner.String())
		}
		b.WriteString(">")
	}
	return b.String()
}

// Addresses returns the outer address followed by every inner address,
// depth first.
func (n *NestedType) Addresses() []string {
	if n == nil {
		return nil
	}
	out := []string{n.Outer.Address}
	for _, inner := range n.Inner {
		out = append(out, inner.Addresses()...)
	}
	return out
}

// parseNestedType reads a "return" or "type" field: a one-element list
// whose element has "outer" and "inner". A bare record is accepted too.
func parseNestedType(v any) *NestedType {
	switch v := v.(type) {
	case []any:
		if len(v) == 0 {
			return nil
		}
		return parseNestedType(v[0])
	case Record:
		n := &NestedType{Outer: LinkableType{Address: v.String("outer")}}
		for _, inner := range v.List("inner") {
			if t := parseNestedType(inner); t != nil {
				n.Inner = append(n.Inner, t)
			}
		}
		return n
	case string:
		if v == "" {
			return nil
		}
		return &NestedType{Outer: LinkableType{Address: v}}
	}
	return nil
}

// Generic is a type parameter with an optional bound.
type Generic struct {
	Name  string
	Bound *NestedType
}

// parseGenerics reads a "generics" mapping of name to {name, type}.
func parseGenerics(rec Record) []*Generic {
	var out []*Generic
	for _, key := range rec.Keys() {
		g := &Generic{Name: key}
		if body, ok := rec.Value(key).(Record); ok {
			if name := body.String("name"); name != "" {
				g.Name = name
			}
			g.Bound = parseNestedType(body.Value("type"))
		}
		out = append(out, g)
	}
	return out
}
