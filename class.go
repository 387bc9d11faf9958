package docview

import "fmt"

// Class is a class or exception. It starts as a placeholder built from an
// entry of its library's classes bucket and owns its members once loaded.
//
// The superclass, interfaces and subclasses are addresses resolved through
// an Index when needed.
type Class struct {
	item

	packageName string
	library     Location

	isAbstract  bool
	superclass  *LinkableType
	interfaces  []LinkableType
	subclasses  []LinkableType
	generics    []*Generic
	annotations *AnnotationGroup

	variables    *Category
	methods      *Category
	constructors *Category
	operators    *Category
}

// NewClass builds a placeholder owned by the library at library.
func NewClass(rec Record, library Location) *Class {
	c := &Class{
		item:        newItem(rec),
		packageName: library.Package,
		library:     library,
	}
	if c.qualifiedName == "" {
		c.qualifiedName = library.QualifiedName() + "." + c.name
	}
	return c
}

// Kind returns KindClass.
func (c *Class) Kind() Kind { return KindClass }

// Location includes the package, if any.
func (c *Class) Location() Location {
	loc := ParseLocation(c.qualifiedName)
	loc.Package = c.packageName
	return loc
}

// AnchorLocation is the class location; a class is always a page.
func (c *Class) AnchorLocation() Location { return c.Location() }

// Library returns the location of the owning library.
func (c *Class) Library() Location { return c.library }

// Accessors for the class declaration and its member categories. Member
// categories are empty until the class is loaded.
func (c *Class) IsAbstract() bool              { return c.isAbstract }
func (c *Class) Superclass() *LinkableType     { return c.superclass }
func (c *Class) Interfaces() []LinkableType    { return c.interfaces }
func (c *Class) Subclasses() []LinkableType    { return c.subclasses }
func (c *Class) Generics() []*Generic          { return c.generics }
func (c *Class) Annotations() *AnnotationGroup { return c.annotations }
func (c *Class) Variables() *Category          { return c.variables }
func (c *Class) Methods() *Category            { return c.methods }
func (c *Class) Constructors() *Category       { return c.constructors }
func (c *Class) Operators() *Category          { return c.operators }

// InstanceVariables returns the non-static properties, own and inherited.
func (c *Class) InstanceVariables() *Category {
	return NewInstanceCategory(CategoryVariables, c.variables.Content())
}

// StaticVariables returns the static properties.
func (c *Class) StaticVariables() *Category {
	return NewStaticCategory(CategoryStaticVariables, c.variables.Content())
}

// InstanceMethods returns the non-static methods, own and inherited.
func (c *Class) InstanceMethods() *Category {
	return NewInstanceCategory(CategoryMethods, c.methods.Content())
}

// StaticMethods returns the static methods.
func (c *Class) StaticMethods() *Category {
	return NewStaticCategory(CategoryStaticMethods, c.methods.Content())
}

// Categories returns the page sections in display order, or nil before the
// class is loaded. The instance and static splits are computed on each call.
func (c *Class) Categories() []*Category {
	if !c.loaded {
		return nil
	}
	return []*Category{
		c.constructors,
		c.StaticVariables(),
		c.StaticMethods(),
		c.InstanceVariables(),
		c.InstanceMethods(),
		c.operators,
	}
}

// Load populates the class from its payload, registers it and its members
// in idx, and marks it loaded. Loading a loaded class is a no-op. On error
// the class is left untouched.
func (c *Class) Load(rec Record, idx *Index) error {
	if c.loaded {
		return nil
	}
	if err := c.LoadValues(rec); err != nil {
		return err
	}
	c.loaded = true
	c.AddToHierarchy(idx)
	return nil
}

// LoadValues populates the class from rec. Inherited members listed in the
// payload are merged into the matching categories. Nothing is assigned
// unless the whole payload parses.
func (c *Class) LoadValues(rec Record) error {
	qn := c.qualifiedName
	wrap := func(err error) error { return fmt.Errorf("class %s: %w", qn, err) }

	isAbstract, err := rec.Bool("isAbstract")
	if err != nil {
		return wrap(err)
	}

	methods := rec.Record("methods")
	variables, err := NewVariableCategory(CategoryVariables,
		rec.Entries("variables"), methods.Entries("getters"), methods.Entries("setters"), qn)
	if err != nil {
		return wrap(err)
	}
	plain, err := NewFunctionCategory(CategoryMethods, methods.Entries("methods"), qn, MethodPlain)
	if err != nil {
		return wrap(err)
	}
	constructors, err := NewFunctionCategory(CategoryConstructors, methods.Entries("constructors"), qn, MethodConstructor)
	if err != nil {
		return wrap(err)
	}
	operators, err := NewFunctionCategory(CategoryOperators, methods.Entries("operators"), qn, MethodOperator)
	if err != nil {
		return wrap(err)
	}

	for _, e := range rec.Entries("inheritedVariables") {
		v, err := NewVariable(e, qn)
		if err != nil {
			return wrap(err)
		}
		variables.AddInheritedItem(qn, v.inheritedBy(qn), nil)
	}
	inherited := rec.Record("inheritedMethods")
	for _, e := range inherited.Entries("getters") {
		v, err := NewAccessor(e, qn, false)
		if err != nil {
			return wrap(err)
		}
		variables.AddInheritedItem(qn, v.inheritedBy(qn), nil)
	}
	for _, e := range inherited.Entries("setters") {
		v, err := NewAccessor(e, qn, true)
		if err != nil {
			return wrap(err)
		}
		variables.AddInheritedItem(qn, v.inheritedBy(qn), nil)
	}
	for _, e := range inherited.Entries("methods") {
		m, err := NewMethod(e, qn, MethodPlain)
		if err != nil {
			return wrap(err)
		}
		plain.AddInheritedItem(qn, m.inheritedBy(qn), nil)
	}
	for _, e := range inherited.Entries("operators") {
		m, err := NewMethod(e, qn, MethodOperator)
		if err != nil {
			return wrap(err)
		}
		operators.AddInheritedItem(qn, m.inheritedBy(qn), nil)
	}

	c.isAbstract = isAbstract
	c.superclass = nil
	if t := parseNestedType(rec.Value("superclass")); t != nil {
		c.superclass = &t.Outer
	}
	c.interfaces = parseLinkableTypes(rec.List("implements"))
	c.subclasses = parseLinkableTypes(rec.List("subclass"))
	c.generics = parseGenerics(rec.Record("generics"))
	c.annotations = NewAnnotationGroup(rec.Records("annotations"))
	c.variables = variables
	c.methods = plain
	c.constructors = constructors
	c.operators = operators
	if s := rec.String("comment"); s != "" {
		c.comment = s
	}
	if s := rec.String("preview"); s != "" {
		c.preview = s
	}
	return nil
}

func parseLinkableTypes(list []any) []LinkableType {
	var out []LinkableType
	for _, v := range list {
		if t := parseNestedType(v); t != nil {
			out = append(out, t.Outer)
		}
	}
	return out
}

// Inherit merges the instance members of a loaded ancestor into c as
// inherited items, registering each in idx. Constructors and static
// members are not inherited. Members c already has keep their place and
// only take over a missing comment.
func (c *Class) Inherit(ancestor *Class, idx *Index) {
	if !c.loaded || !ancestor.loaded || ancestor == c {
		return
	}
	merge := func(dst, src *Category) {
		for _, it := range src.Content() {
			m, ok := it.(inheritable)
			if !ok || m.IsStatic() {
				continue
			}
			dst.AddInheritedItem(c.qualifiedName, m.inheritedBy(c.qualifiedName), idx)
		}
	}
	merge(c.variables, ancestor.variables)
	merge(c.methods, ancestor.methods)
	merge(c.operators, ancestor.operators)
}

// MemberNamed looks name up among properties, methods, constructors and
// operators.
func (c *Class) MemberNamed(name string, fallback Item) Item {
	for _, cat := range []*Category{c.variables, c.methods, c.constructors, c.operators} {
		if it := cat.MemberNamed(name, nil); it != nil {
			return it
		}
	}
	return fallback
}

// AddToHierarchy registers the class and, once loaded, its members.
func (c *Class) AddToHierarchy(idx *Index) {
	idx.Register(c.qualifiedName, c)
	if address := c.Location().WithoutAnchor(); address != c.qualifiedName {
		idx.Register(address, c)
	}
	if !c.loaded {
		return
	}
	for _, cat := range []*Category{c.variables, c.methods, c.constructors, c.operators} {
		for _, it := range cat.Content() {
			it.AddToHierarchy(idx)
		}
	}
}
