// Package etree reads and writes sitemaps listing the pages of a hosted
// documentation viewer.
package etree

import (
	"io"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docview"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Sitemap renders page addresses as viewer URLs. Each address becomes the
// fragment of BaseURL.
type Sitemap struct {
	BaseURL string
}

// NewSitemap returns a Sitemap for a viewer hosted at baseURL.
func NewSitemap(baseURL string) (*Sitemap, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, docview.Errorf(docview.EINVALID, "invalid base URL: %q", baseURL)
	}
	u.Fragment = ""
	return &Sitemap{BaseURL: u.String()}, nil
}

// URL returns the viewer URL of address.
func (s *Sitemap) URL(address string) string {
	return s.BaseURL + "#" + address
}

// Write writes a urlset with one entry per address, in the given order.
func (s *Sitemap) Write(w io.Writer, addresses []string) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNamespace)
	for _, address := range addresses {
		urlset.CreateElement("url").CreateElement("loc").SetText(s.URL(address))
	}
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

// Read returns the addresses of a urlset written for the same base URL.
// Entries pointing elsewhere are skipped.
func (s *Sitemap) Read(r io.Reader) ([]string, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, docview.Errorf(docview.EMALFORMED, "parsing sitemap XML: %s", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "urlset" {
		return nil, docview.Errorf(docview.EMALFORMED, "sitemap has no urlset")
	}

	var addresses []string
	for _, el := range root.SelectElements("url") {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		base, address, ok := strings.Cut(strings.TrimSpace(loc.Text()), "#")
		if !ok || base != s.BaseURL || address == "" {
			continue
		}
		addresses = append(addresses, address)
	}
	return addresses, nil
}
