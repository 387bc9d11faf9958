package docview

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Reserved names.
const (
	// HomeAddress addresses the top-level root.
	HomeAddress = "home"

	// ObjectName is the simple name of the universal root object type.
	ObjectName = "Object"

	// CoreLibraryPrefix marks libraries that sort before all others.
	CoreLibraryPrefix = "dart-"

	// hashPrefix starts every anchor produced by ToHash.
	hashPrefix = "id_"
)

var (
	packagePattern = regexp.MustCompile(`^([\w\-]+)/`)
	libraryPattern = regexp.MustCompile(`^([\w\-:]+)`)
	memberPattern  = regexp.MustCompile(`^\.([\w<+|\[\]>/^=&~*\-%]+)`)
	anchorPattern  = regexp.MustCompile(`^@([\w<+|\[\]>/^=&~*\-%.,]+)`)
	escapePattern  = regexp.MustCompile(`-([0-9a-f]+)-`)
)

// Location is a structured documentation address of the form
// [package/]library[.member[.subMember]][@anchor].
//
// The zero value is the empty location, which is also the parent of every
// top-level location.
type Location struct {
	Package   string
	Library   string
	Member    string
	SubMember string
	Anchor    string
}

// ParseLocation parses raw into a Location. It never fails: a leading "#"
// is skipped, each component is matched in order, and anything that does
// not match is left empty.
func ParseLocation(raw string) Location {
	var loc Location
	rest := strings.TrimPrefix(raw, "#")

	match := func(re *regexp.Regexp) string {
		m := re.FindStringSubmatch(rest)
		if m == nil {
			return ""
		}
		rest = rest[len(m[0]):]
		return m[1]
	}

	loc.Package = match(packagePattern)
	loc.Library = match(libraryPattern)
	loc.Member = match(memberPattern)
	loc.SubMember = match(memberPattern)
	loc.Anchor = match(anchorPattern)
	return loc
}

// IsEmpty reports whether no component is set.
func (l Location) IsEmpty() bool {
	return l == Location{}
}

// WithoutAnchor returns the canonical address without the anchor part.
func (l Location) WithoutAnchor() string {
	var b strings.Builder
	if l.Package != "" {
		b.WriteString(l.Package)
		b.WriteString("/")
	}
	b.WriteString(l.Library)
	if l.Member != "" {
		b.WriteString(".")
		b.WriteString(l.Member)
	}
	if l.SubMember != "" {
		b.WriteString(".")
		b.WriteString(l.SubMember)
	}
	return b.String()
}

// WithAnchor returns the full canonical address.
func (l Location) WithAnchor() string {
	if l.Anchor == "" {
		return l.WithoutAnchor()
	}
	return l.WithoutAnchor() + "@" + l.Anchor
}

// String returns the full canonical address.
func (l Location) String() string {
	return l.WithAnchor()
}

// QualifiedName returns the library and member chain without package or
// anchor. Entities are indexed under this form.
func (l Location) QualifiedName() string {
	l.Package = ""
	return l.WithoutAnchor()
}

// Equal reports whether both locations have the same canonical string.
func (l Location) Equal(other Location) bool {
	return l.String() == other.String()
}

// ParentLocation drops the most specific component. The parent of a
// package-only or empty location is the empty location.
func (l Location) ParentLocation() Location {
	switch {
	case l.Anchor != "":
		l.Anchor = ""
	case l.SubMember != "":
		l.SubMember = ""
	case l.Member != "":
		l.Member = ""
	case l.Library != "":
		l.Library = ""
	default:
		return Location{}
	}
	return l
}

// Anchored returns a copy of l with the given anchor.
func (l Location) Anchored(anchor string) Location {
	l.Anchor = anchor
	return l
}

// AsMemberOrSubMemberNotAnchor moves an anchor produced by ToHash into the
// first free member slot. A location without an anchor is returned as is;
// when both member slots are taken the anchor is dropped.
func (l Location) AsMemberOrSubMemberNotAnchor() Location {
	if l.Anchor == "" {
		return l
	}
	name := FromHash(l.Anchor)
	switch {
	case l.Member == "":
		l.Member = name
	case l.SubMember == "":
		l.SubMember = name
	}
	l.Anchor = ""
	return l
}

// ToHash returns an anchor-safe identifier for a member name. Word
// characters are kept; every other rune is written as -hex- so that
// operators ("+", "[]=") and setters ("length=") survive as anchors.
func ToHash(name string) string {
	var b strings.Builder
	b.WriteString(hashPrefix)
	for _, r := range name {
		if isWordRune(r) {
			b.WriteRune(r)
			continue
		}
		fmt.Fprintf(&b, "-%x-", r)
	}
	return b.String()
}

// FromHash reverses ToHash. Anchors without the id_ prefix are returned
// unchanged.
func FromHash(anchor string) string {
	if !strings.HasPrefix(anchor, hashPrefix) {
		return anchor
	}
	escaped := strings.TrimPrefix(anchor, hashPrefix)
	return escapePattern.ReplaceAllStringFunc(escaped, func(s string) string {
		code, err := strconv.ParseInt(s[1:len(s)-1], 16, 32)
		if err != nil {
			return s
		}
		return string(rune(code))
	})
}

// NormalizeLibraryName maps a display library name ("dart:core") to its
// storage form ("dart-core").
func NormalizeLibraryName(name string) string {
	return strings.ReplaceAll(name, ":", "-")
}

func isWordRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
