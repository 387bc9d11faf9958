package docview

import (
	"slices"
	"strings"
)

// Annotation simple names that are extracted into dedicated fields.
const (
	supportedBrowserAnnotation = "SupportedBrowser"
	domNameAnnotation          = "DomName"
)

// Annotation is a decoration on a member.
type Annotation struct {
	QualifiedName string
	Parameters    []string
}

// SimpleName returns the last dotted component of the qualified name.
func (a Annotation) SimpleName() string {
	if i := strings.LastIndex(a.QualifiedName, "."); i >= 0 {
		return a.QualifiedName[i+1:]
	}
	return a.QualifiedName
}

// Equal compares qualified name and parameter sequence.
func (a Annotation) Equal(other Annotation) bool {
	return a.QualifiedName == other.QualifiedName && slices.Equal(a.Parameters, other.Parameters)
}

// AnnotationGroup holds every annotation on one member.
type AnnotationGroup struct {
	SupportedBrowsers []string
	DomName           string
	Annotations       []Annotation
}

// NewAnnotationGroup builds a group from "annotations" entries, each with
// a "name" and a "parameters" list.
func NewAnnotationGroup(entries []Record) *AnnotationGroup {
	g := &AnnotationGroup{}
	for _, rec := range entries {
		a := Annotation{
			QualifiedName: rec.String("name"),
			Parameters:    rec.Strings("parameters"),
		}
		switch a.SimpleName() {
		case supportedBrowserAnnotation:
			g.SupportedBrowsers = append(g.SupportedBrowsers, strings.Join(a.Parameters, " "))
		case domNameAnnotation:
			if len(a.Parameters) > 0 {
				g.DomName = unquote(a.Parameters[0])
			}
		default:
			if !g.Contains(a) {
				g.Annotations = append(g.Annotations, a)
			}
		}
	}
	return g
}

// Contains reports whether an equal annotation is already in the group.
func (g *AnnotationGroup) Contains(a Annotation) bool {
	if g == nil {
		return false
	}
	return slices.ContainsFunc(g.Annotations, a.Equal)
}

// Len returns the number of generic annotations.
func (g *AnnotationGroup) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Annotations)
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
