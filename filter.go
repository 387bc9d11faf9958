package docview

// Filter controls which inherited members are shown.
type Filter struct {
	ShowInherited     bool
	ShowObjectMembers bool
}

// ShowsEverything reports whether no member is ever hidden.
func (f Filter) ShowsEverything() bool {
	return f.ShowInherited && f.ShowObjectMembers
}

// Visible reports whether it passes the filter. Members declared in place
// always show. Inherited members show when ShowInherited is set, except
// those inherited from the root object type, which additionally need
// ShowObjectMembers.
func (f Filter) Visible(it Item) bool {
	if !it.IsInherited() {
		return true
	}
	if !f.ShowInherited {
		return false
	}
	if InheritedFromObject(it) {
		return f.ShowObjectMembers
	}
	return true
}

// InheritedFromObject reports whether it was inherited from the root
// object type.
func InheritedFromObject(it Item) bool {
	from := it.InheritedFrom()
	if from == "" {
		return false
	}
	return ParseLocation(from).Member == ObjectName
}
