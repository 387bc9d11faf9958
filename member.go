package docview

import (
	"fmt"
	"strings"
)

// MethodKind distinguishes the buckets a method record came from.
type MethodKind int

// Method kinds.
const (
	MethodPlain MethodKind = iota
	MethodConstructor
	MethodOperator
)

// inheritable is implemented by members that subclasses inherit.
type inheritable interface {
	Item
	IsStatic() bool
	inheritedBy(definingClass string) Item
}

// ownerName returns the simple name of the class or library at owner.
func ownerName(owner string) string {
	loc := ParseLocation(owner)
	if loc.Member != "" {
		return loc.Member
	}
	return loc.Library
}

// commentSource picks the address a comment originally came from.
func commentSource(from Item) string {
	if c, ok := from.(interface{ CommentFrom() string }); ok && c.CommentFrom() != "" {
		return c.CommentFrom()
	}
	if from.InheritedFrom() != "" {
		return from.InheritedFrom()
	}
	return from.QualifiedName()
}

// Method is a function, method, constructor or operator.
type Method struct {
	item

	owner         string
	kind          MethodKind
	isStatic      bool
	isAbstract    bool
	isConstant    bool
	inheritedFrom string
	commentFrom   string
	returnType    *NestedType
	parameters    []*Parameter
	annotations   *AnnotationGroup
	generics      []*Generic
}

// NewMethod builds a method from its record. owner is the address of the
// declaring class or library.
func NewMethod(rec Record, owner string, kind MethodKind) (*Method, error) {
	m := &Method{
		item:          newItem(rec),
		owner:         owner,
		kind:          kind,
		inheritedFrom: rec.String("inheritedFrom"),
		commentFrom:   rec.String("commentFrom"),
		returnType:    parseNestedType(rec.Value("return")),
		annotations:   NewAnnotationGroup(rec.Records("annotations")),
		generics:      parseGenerics(rec.Record("generics")),
	}
	if kind == MethodConstructor && m.name == "" {
		m.name = ownerName(owner)
	}
	if m.qualifiedName == "" {
		m.qualifiedName = owner + "." + m.name
	}

	var err error
	if m.isStatic, err = rec.Bool("static"); err != nil {
		return nil, fmt.Errorf("method %s: %w", m.qualifiedName, err)
	}
	if m.isAbstract, err = rec.Bool("abstract"); err != nil {
		return nil, fmt.Errorf("method %s: %w", m.qualifiedName, err)
	}
	if m.isConstant, err = rec.Bool("constant"); err != nil {
		return nil, fmt.Errorf("method %s: %w", m.qualifiedName, err)
	}
	if m.parameters, err = parseParameters(rec.Record("parameters"), m.qualifiedName); err != nil {
		return nil, fmt.Errorf("method %s: %w", m.qualifiedName, err)
	}
	m.loaded = true
	return m, nil
}

// Kind returns KindMethod.
func (m *Method) Kind() Kind { return KindMethod }

// DisplayName decorates operators and constructors.
func (m *Method) DisplayName() string {
	switch m.kind {
	case MethodOperator:
		return "operator " + m.name
	case MethodConstructor:
		class := ownerName(m.owner)
		if m.name == class {
			return class
		}
		return class + "." + m.name
	}
	return m.name
}

// Accessors for the method declaration. Owner is the qualified name of the
// enclosing library or class; InheritedFrom and CommentFrom name the class a
// copied member or comment came from.
func (m *Method) Owner() string                  { return m.owner }
func (m *Method) MethodKind() MethodKind         { return m.kind }
func (m *Method) IsStatic() bool                 { return m.isStatic }
func (m *Method) IsAbstract() bool               { return m.isAbstract }
func (m *Method) IsConstant() bool               { return m.isConstant }
func (m *Method) IsConstructor() bool            { return m.kind == MethodConstructor }
func (m *Method) IsOperator() bool               { return m.kind == MethodOperator }
func (m *Method) InheritedFrom() string          { return m.inheritedFrom }
func (m *Method) IsInherited() bool              { return m.inheritedFrom != "" }
func (m *Method) CommentFrom() string            { return m.commentFrom }
func (m *Method) ReturnType() *NestedType        { return m.returnType }
func (m *Method) Parameters() []*Parameter       { return m.parameters }
func (m *Method) Annotations() *AnnotationGroup  { return m.annotations }
func (m *Method) Generics() []*Generic           { return m.generics }

// Signature renders the method as "ReturnType name(params)".
func (m *Method) Signature() string {
	var b strings.Builder
	if m.isStatic {
		b.WriteString("static ")
	}
	if m.isAbstract {
		b.WriteString("abstract ")
	}
	if m.kind != MethodConstructor && m.returnType != nil {
		b.WriteString(m.returnType.String())
		b.WriteString(" ")
	}
	b.WriteString(m.DisplayName())
	b.WriteString("(")
	b.WriteString(formatParameters(m.parameters))
	b.WriteString(")")
	return b.String()
}

// AnchorLocation anchors the method on its owner's page.
func (m *Method) AnchorLocation() Location { return memberAnchor(m.owner, m.name) }

// MemberNamed looks up a parameter.
func (m *Method) MemberNamed(name string, fallback Item) Item {
	return parameterNamed(m.parameters, name, fallback)
}

// AddToHierarchy registers the method under its qualified name.
func (m *Method) AddToHierarchy(idx *Index) {
	idx.Register(m.qualifiedName, m)
}

// InheritComment copies the comment of from when m has none.
func (m *Method) InheritComment(from Item) {
	if m.comment != "" || from.Comment() == "" {
		return
	}
	m.comment = from.Comment()
	m.commentFrom = commentSource(from)
}

func (m *Method) inheritedBy(definingClass string) Item {
	c := *m
	c.owner = definingClass
	c.qualifiedName = definingClass + "." + m.name
	if c.inheritedFrom == "" {
		c.inheritedFrom = m.qualifiedName
	}
	c.parameters = rebindParameters(m.parameters, c.qualifiedName)
	return &c
}

// Variable is a field or a getter/setter accessor.
type Variable struct {
	item

	owner         string
	isStatic      bool
	isFinal       bool
	isConstant    bool
	isGetter      bool
	isSetter      bool
	inheritedFrom string
	commentFrom   string
	typ           *NestedType
	annotations   *AnnotationGroup
}

// NewVariable builds a field from its record.
func NewVariable(rec Record, owner string) (*Variable, error) {
	v := &Variable{
		item:          newItem(rec),
		owner:         owner,
		inheritedFrom: rec.String("inheritedFrom"),
		commentFrom:   rec.String("commentFrom"),
		typ:           parseNestedType(rec.Value("type")),
		annotations:   NewAnnotationGroup(rec.Records("annotations")),
	}
	if v.qualifiedName == "" {
		v.qualifiedName = owner + "." + v.name
	}
	var err error
	if v.isStatic, err = rec.Bool("static"); err != nil {
		return nil, fmt.Errorf("variable %s: %w", v.qualifiedName, err)
	}
	if v.isFinal, err = rec.Bool("final"); err != nil {
		return nil, fmt.Errorf("variable %s: %w", v.qualifiedName, err)
	}
	if v.isConstant, err = rec.Bool("constant"); err != nil {
		return nil, fmt.Errorf("variable %s: %w", v.qualifiedName, err)
	}
	v.loaded = true
	return v, nil
}

// NewAccessor builds a property from a getter or setter method record.
// A getter's type is its return type; a setter's is its parameter's type.
func NewAccessor(rec Record, owner string, setter bool) (*Variable, error) {
	m, err := NewMethod(rec, owner, MethodPlain)
	if err != nil {
		return nil, err
	}
	v := &Variable{
		item:          m.item,
		owner:         owner,
		isStatic:      m.isStatic,
		isConstant:    m.isConstant,
		isGetter:      !setter,
		isSetter:      setter,
		inheritedFrom: m.inheritedFrom,
		commentFrom:   m.commentFrom,
		typ:           m.returnType,
		annotations:   m.annotations,
	}
	if setter {
		v.typ = nil
		if len(m.parameters) > 0 {
			v.typ = m.parameters[0].Type()
		}
	}
	return v, nil
}

// Kind returns KindVariable.
func (v *Variable) Kind() Kind { return KindVariable }

// DisplayName drops the trailing "=" of setter names.
func (v *Variable) DisplayName() string {
	return strings.TrimSuffix(v.name, "=")
}

// Accessors for the variable declaration, mirroring those of Method.
func (v *Variable) Owner() string                 { return v.owner }
func (v *Variable) IsStatic() bool                { return v.isStatic }
func (v *Variable) IsFinal() bool                 { return v.isFinal }
func (v *Variable) IsConstant() bool              { return v.isConstant }
func (v *Variable) IsGetter() bool                { return v.isGetter }
func (v *Variable) IsSetter() bool                { return v.isSetter }
func (v *Variable) InheritedFrom() string         { return v.inheritedFrom }
func (v *Variable) IsInherited() bool             { return v.inheritedFrom != "" }
func (v *Variable) CommentFrom() string           { return v.commentFrom }
func (v *Variable) Type() *NestedType             { return v.typ }
func (v *Variable) Annotations() *AnnotationGroup { return v.annotations }

// Signature renders the property as "Type name".
func (v *Variable) Signature() string {
	var b strings.Builder
	if v.isStatic {
		b.WriteString("static ")
	}
	switch {
	case v.isConstant:
		b.WriteString("const ")
	case v.isFinal:
		b.WriteString("final ")
	}
	if v.typ != nil {
		b.WriteString(v.typ.String())
		b.WriteString(" ")
	}
	b.WriteString(v.DisplayName())
	return b.String()
}

// AnchorLocation anchors the variable on its owner's page.
func (v *Variable) AnchorLocation() Location { return memberAnchor(v.owner, v.name) }

// MemberNamed returns fallback; variables have no members.
func (v *Variable) MemberNamed(_ string, fallback Item) Item {
	return fallback
}

// AddToHierarchy registers the variable under its qualified name.
func (v *Variable) AddToHierarchy(idx *Index) {
	idx.Register(v.qualifiedName, v)
}

// InheritComment copies the comment of from when v has none.
func (v *Variable) InheritComment(from Item) {
	if v.comment != "" || from.Comment() == "" {
		return
	}
	v.comment = from.Comment()
	v.commentFrom = commentSource(from)
}

func (v *Variable) inheritedBy(definingClass string) Item {
	c := *v
	c.owner = definingClass
	c.qualifiedName = definingClass + "." + v.name
	if c.inheritedFrom == "" {
		c.inheritedFrom = v.qualifiedName
	}
	return &c
}

// Typedef is a named function type.
type Typedef struct {
	item

	owner       string
	returnType  *NestedType
	parameters  []*Parameter
	annotations *AnnotationGroup
	generics    []*Generic
}

// NewTypedef builds a typedef from its record.
func NewTypedef(rec Record, owner string) (*Typedef, error) {
	t := &Typedef{
		item:        newItem(rec),
		owner:       owner,
		returnType:  parseNestedType(rec.Value("return")),
		annotations: NewAnnotationGroup(rec.Records("annotations")),
		generics:    parseGenerics(rec.Record("generics")),
	}
	if t.qualifiedName == "" {
		t.qualifiedName = owner + "." + t.name
	}
	var err error
	if t.parameters, err = parseParameters(rec.Record("parameters"), t.qualifiedName); err != nil {
		return nil, fmt.Errorf("typedef %s: %w", t.qualifiedName, err)
	}
	t.loaded = true
	return t, nil
}

// Accessors for the typedef declaration. Kind returns KindTypedef.
func (t *Typedef) Kind() Kind                    { return KindTypedef }
func (t *Typedef) Owner() string                 { return t.owner }
func (t *Typedef) ReturnType() *NestedType       { return t.returnType }
func (t *Typedef) Parameters() []*Parameter      { return t.parameters }
func (t *Typedef) Annotations() *AnnotationGroup { return t.annotations }
func (t *Typedef) Generics() []*Generic          { return t.generics }

// Signature renders the typedef as "typedef ReturnType name(params)".
func (t *Typedef) Signature() string {
	ret := "void"
	if t.returnType != nil {
		ret = t.returnType.String()
	}
	return fmt.Sprintf("typedef %s %s(%s)", ret, t.name, formatParameters(t.parameters))
}

func (t *Typedef) AnchorLocation() Location { return memberAnchor(t.owner, t.name) }

// MemberNamed looks up a parameter.
func (t *Typedef) MemberNamed(name string, fallback Item) Item {
	return parameterNamed(t.parameters, name, fallback)
}

// AddToHierarchy registers the typedef under its qualified name.
func (t *Typedef) AddToHierarchy(idx *Index) {
	idx.Register(t.qualifiedName, t)
}
