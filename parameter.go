package docview

import (
	"fmt"
	"strings"
)

// Parameter is a parameter of a method or typedef.
type Parameter struct {
	item

	owner        string
	isOptional   bool
	isNamed      bool
	hasDefault   bool
	defaultValue string
	typ          *NestedType
	annotations  *AnnotationGroup
}

// NewParameter builds a parameter from a record of
// {optional, named, default, type, value, annotations}.
func NewParameter(name string, rec Record, owner string) (*Parameter, error) {
	p := &Parameter{
		item: item{
			name:    name,
			comment: rec.String("comment"),
			loaded:  true,
		},
		owner:        owner,
		defaultValue: rec.String("value"),
		typ:          parseNestedType(rec.Value("type")),
		annotations:  NewAnnotationGroup(rec.Records("annotations")),
	}
	if n := rec.String("name"); n != "" {
		p.name = n
	}
	p.qualifiedName = owner + "." + p.name
	var err error
	if p.isOptional, err = rec.Bool("optional"); err != nil {
		return nil, fmt.Errorf("parameter %s: %w", name, err)
	}
	if p.isNamed, err = rec.Bool("named"); err != nil {
		return nil, fmt.Errorf("parameter %s: %w", name, err)
	}
	if p.hasDefault, err = rec.Bool("default"); err != nil {
		return nil, fmt.Errorf("parameter %s: %w", name, err)
	}
	return p, nil
}

func parseParameters(rec Record, owner string) ([]*Parameter, error) {
	var out []*Parameter
	for _, key := range rec.Keys() {
		p, err := NewParameter(key, rec.Record(key), owner)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func rebindParameters(params []*Parameter, owner string) []*Parameter {
	if params == nil {
		return nil
	}
	out := make([]*Parameter, len(params))
	for i, p := range params {
		c := *p
		c.owner = owner
		c.qualifiedName = owner + "." + p.name
		out[i] = &c
	}
	return out
}

func parameterNamed(params []*Parameter, name string, fallback Item) Item {
	for _, p := range params {
		if p.name == name {
			return p
		}
	}
	return fallback
}

// Accessors for the parameter declaration. Owner is the qualified name of
// the method or typedef that declares it.
func (p *Parameter) Kind() Kind                    { return KindParameter }
func (p *Parameter) Owner() string                 { return p.owner }
func (p *Parameter) IsOptional() bool              { return p.isOptional }
func (p *Parameter) IsNamed() bool                 { return p.isNamed }
func (p *Parameter) HasDefault() bool              { return p.hasDefault }
func (p *Parameter) DefaultValue() string          { return p.defaultValue }
func (p *Parameter) Type() *NestedType             { return p.typ }
func (p *Parameter) Annotations() *AnnotationGroup { return p.annotations }

// Location anchors the parameter inside its owner's location.
func (p *Parameter) Location() Location {
	return ParseLocation(p.owner).Anchored(ToHash(p.name))
}

func (p *Parameter) AnchorLocation() Location { return p.Location() }

// MemberNamed returns fallback; parameters have no members.
func (p *Parameter) MemberNamed(_ string, fallback Item) Item {
	return fallback
}

// AddToHierarchy does nothing: parameters are reached through their owner.
func (p *Parameter) AddToHierarchy(*Index) {}

// String renders "Type name" with the default value, if any.
func (p *Parameter) String() string {
	var b strings.Builder
	if p.typ != nil {
		b.WriteString(p.typ.String())
		b.WriteString(" ")
	}
	b.WriteString(p.name)
	if p.hasDefault {
		sep := " = "
		if p.isNamed {
			sep = ": "
		}
		b.WriteString(sep)
		b.WriteString(p.defaultValue)
	}
	return b.String()
}

// formatParameters joins parameters, wrapping optional positional ones in
// [] and named ones in {}.
func formatParameters(params []*Parameter) string {
	var required, positional, named []string
	for _, p := range params {
		switch {
		case p.isNamed:
			named = append(named, p.String())
		case p.isOptional:
			positional = append(positional, p.String())
		default:
			required = append(required, p.String())
		}
	}
	parts := required
	if len(positional) > 0 {
		parts = append(parts, "["+strings.Join(positional, ", ")+"]")
	}
	if len(named) > 0 {
		parts = append(parts, "{"+strings.Join(named, ", ")+"}")
	}
	return strings.Join(parts, ", ")
}
