package docview

import "fmt"

// Library is a documented library. It starts as a placeholder built from a
// manifest entry and owns its categories only once loaded.
type Library struct {
	item

	packageName string
	home        string

	classes    *Category
	exceptions *Category
	typedefs   *Category
	variables  *Category
	functions  *Category
	operators  *Category
}

// NewLibrary builds a placeholder from a manifest entry. home is the
// address of the owning Home.
func NewLibrary(rec Record, packageName, home string) *Library {
	l := &Library{
		item:        newItem(rec),
		packageName: packageName,
		home:        home,
	}
	if l.qualifiedName == "" {
		l.qualifiedName = NormalizeLibraryName(l.name)
	}
	if l.name == "" {
		l.name = l.qualifiedName
	}
	return l
}

// Kind returns KindLibrary.
func (l *Library) Kind() Kind { return KindLibrary }

// PackageName returns the package the library belongs to, or "".
func (l *Library) PackageName() string { return l.packageName }

// Home returns the address of the owning Home.
func (l *Library) Home() string { return l.home }

// Location includes the package, if any.
func (l *Library) Location() Location {
	loc := ParseLocation(l.qualifiedName)
	loc.Package = l.packageName
	return loc
}

// Classes, Exceptions, Typedefs, Variables, Functions and Operators return
// the library's member categories. They are empty until the library is
// loaded.
func (l *Library) Classes() *Category    { return l.classes }
func (l *Library) Exceptions() *Category { return l.exceptions }
func (l *Library) Typedefs() *Category   { return l.typedefs }
func (l *Library) Variables() *Category  { return l.variables }
func (l *Library) Functions() *Category  { return l.functions }
func (l *Library) Operators() *Category  { return l.operators }

// Categories returns the six categories in display order, or nil before
// the library is loaded.
func (l *Library) Categories() []*Category {
	if !l.loaded {
		return nil
	}
	return []*Category{l.classes, l.exceptions, l.typedefs, l.variables, l.functions, l.operators}
}

// Load populates the library from its payload, registers it and its
// members in idx, and marks it loaded. Loading a loaded library is a no-op.
// On error the library is left untouched.
func (l *Library) Load(rec Record, idx *Index) error {
	if l.loaded {
		return nil
	}
	if err := l.LoadValues(rec); err != nil {
		return err
	}
	l.loaded = true
	l.AddToHierarchy(idx)
	return nil
}

// LoadValues populates comment and categories from rec. Absent sections
// yield empty categories. Nothing is assigned unless every section parses.
func (l *Library) LoadValues(rec Record) error {
	qn := l.qualifiedName
	classes := rec.Record("classes")
	functions := rec.Record("functions")

	typedefs, err := NewTypedefCategory(CategoryTypedefs, classes.Entries("typedef"), qn)
	if err != nil {
		return fmt.Errorf("library %s: %w", qn, err)
	}
	variables, err := NewVariableCategory(CategoryVariables,
		rec.Entries("variables"), functions.Entries("getters"), functions.Entries("setters"), qn)
	if err != nil {
		return fmt.Errorf("library %s: %w", qn, err)
	}
	fns, err := NewFunctionCategory(CategoryFunctions, functions.Entries("methods"), qn, MethodPlain)
	if err != nil {
		return fmt.Errorf("library %s: %w", qn, err)
	}
	operators, err := NewFunctionCategory(CategoryOperators, functions.Entries("operators"), qn, MethodOperator)
	if err != nil {
		return fmt.Errorf("library %s: %w", qn, err)
	}

	l.classes = NewClassCategory(CategoryClasses, classes.Entries("class"), l.Location())
	l.exceptions = NewClassCategory(CategoryExceptions, classes.Entries("error"), l.Location())
	l.typedefs = typedefs
	l.variables = variables
	l.functions = fns
	l.operators = operators
	if c := rec.String("comment"); c != "" {
		l.comment = c
	}
	if p := rec.String("preview"); p != "" {
		l.preview = p
	}
	return nil
}

// MemberNamed looks name up in every category.
func (l *Library) MemberNamed(name string, fallback Item) Item {
	for _, c := range l.Categories() {
		if it := c.MemberNamed(name, nil); it != nil {
			return it
		}
	}
	return fallback
}

// AddToHierarchy registers the library and, once loaded, its members.
func (l *Library) AddToHierarchy(idx *Index) {
	idx.Register(l.qualifiedName, l)
	if address := l.Location().WithoutAnchor(); address != l.qualifiedName {
		idx.Register(address, l)
	}
	for _, c := range l.Categories() {
		for _, it := range c.Content() {
			it.AddToHierarchy(idx)
		}
	}
}
