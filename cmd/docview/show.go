package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/docview"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	if err := deps.Viewer.Start(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docview.ErrorMessage(err))
		return err
	}
	deps.Viewer.SetFilter(docview.Filter{ShowInherited: c.Inherited, ShowObjectMembers: c.ObjectMembers})

	if c.Address != "" {
		ok, err := deps.Navigator.HandleLink(deps.Ctx, "#"+c.Address)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docview.ErrorMessage(err))
			return err
		}
		if !ok {
			return docview.Errorf(docview.ENOTFOUND, "nothing to show at %q", c.Address)
		}
	}

	p := &pageWriter{w: deps.Stdout, format: deps.Format, converter: deps.Converter}
	var err error
	deps.Loader.View(func() {
		err = p.write(deps.Viewer.Path(), deps.Navigator.CurrentPage(), deps.Navigator.CurrentLocation(), deps.Viewer.Filter())
	})
	return err
}

// pageWriter renders a page as text.
type pageWriter struct {
	w         io.Writer
	format    string
	converter docview.Converter
}

func (p *pageWriter) write(path []docview.Item, page docview.Item, loc docview.Location, filter docview.Filter) error {
	if len(path) > 1 {
		crumbs := make([]string, len(path))
		for i, it := range path {
			crumbs[i] = it.DisplayName()
		}
		fmt.Fprintln(p.w, strings.Join(crumbs, " > "))
	}
	fmt.Fprintf(p.w, "# %s (%s)\n", page.DisplayName(), page.Kind())
	if err := p.comment(page.Comment()); err != nil {
		return err
	}

	if loc.Anchor != "" {
		if m := page.MemberNamed(docview.FromHash(loc.Anchor), nil); m != nil {
			fmt.Fprintf(p.w, "\n## %s\n", signature(m))
			if err := p.comment(m.Comment()); err != nil {
				return err
			}
		}
	}

	switch page := page.(type) {
	case *docview.Home:
		fmt.Fprintln(p.w, "\n## Libraries")
		for _, child := range page.Children() {
			fmt.Fprintf(p.w, "- %s  #%s\n", child.DisplayName(), child.Location().WithoutAnchor())
		}
	case *docview.Library:
		return p.categories(page.Categories(), filter)
	case *docview.Class:
		return p.categories(page.Categories(), filter)
	}
	return nil
}

func (p *pageWriter) categories(cats []*docview.Category, filter docview.Filter) error {
	for _, cat := range cats {
		items := cat.FilteredContent(filter)
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(p.w, "\n## %s\n", cat.Name)
		for _, it := range items {
			line := "- " + signature(it)
			preview, err := p.render(it.Preview())
			if err != nil {
				return err
			}
			if preview != "" {
				line += ": " + strings.Join(strings.Fields(preview), " ")
			}
			if it.IsInherited() {
				line += " (from " + it.InheritedFrom() + ")"
			}
			fmt.Fprintln(p.w, line)
		}
	}
	return nil
}

func (p *pageWriter) comment(html string) error {
	text, err := p.render(html)
	if err != nil || text == "" {
		return err
	}
	fmt.Fprintf(p.w, "\n%s\n", text)
	return nil
}

func (p *pageWriter) render(html string) (string, error) {
	if p.format == FormatHTML || html == "" {
		return html, nil
	}
	return p.converter.Convert(html)
}

func signature(it docview.Item) string {
	if s, ok := it.(interface{ Signature() string }); ok {
		return s.Signature()
	}
	return it.DisplayName()
}
