// Package website renders the agency landing page as plain HTML strings:
// inline CSS, system fonts and one small script, with no external CSS
// framework.
//
// Live sections are wrapped in data-region elements so the live router can
// diff and push them individually.
package website

import (
	"fmt"
	"html"
	"strings"

	"github.com/mediaonstake/agencysite/internal/content"
)

// PageConfig carries the document metadata.
type PageConfig struct {
	Title       string
	Description string
	// URL is the canonical URL of the page.
	URL        string
	Keywords   []string
	OGImage    string
	Language   string
	ThemeColor string
	Favicon    string
	// Script is the path of the live client script.
	Script string
	// Organization feeds the JSON-LD block.
	Organization Organization
}

// Organization describes the agency for structured data.
type Organization struct {
	Name      string
	Telephone string
	Email     string
	Street    string
	Locality  string
	Logo      string
}

// DefaultPageConfig returns a PageConfig with the brand defaults.
func DefaultPageConfig() PageConfig {
	return PageConfig{
		Language:   "en",
		ThemeColor: Colors["bg"],
		Script:     "/live.js",
	}
}

// PageConfigFor builds the metadata from the site copy. publicURL overrides
// the canonical URL when set.
func PageConfigFor(s *content.Site, publicURL string) PageConfig {
	cfg := DefaultPageConfig()
	cfg.Title = s.Brand.Title
	cfg.Description = s.Brand.Description
	cfg.Keywords = s.Brand.Keywords
	cfg.URL = s.Brand.URL
	if publicURL != "" {
		cfg.URL = strings.TrimSuffix(publicURL, "/") + "/"
	}
	cfg.Favicon = s.Brand.Logo
	cfg.Organization = Organization{
		Name:      s.Brand.Name,
		Telephone: s.Contact.Phone,
		Email:     s.Contact.Email,
		Street:    s.Contact.Office,
		Locality:  s.Contact.Region,
		Logo:      s.Brand.Logo,
	}
	return cfg
}

// Region wraps inner in a live region element.
func Region(tag, name, attrs, inner string) string {
	if attrs != "" {
		attrs = " " + attrs
	}
	return fmt.Sprintf(`<%s data-region="%s"%s>%s</%s>`, tag, html.EscapeString(name), attrs, inner, tag)
}

// Attr renders name="value" with the value escaped.
func Attr(name, value string) string {
	return fmt.Sprintf(`%s="%s"`, name, html.EscapeString(value))
}

// Event renders the attributes that make an element send a live event on click.
func Event(name string, value any) string {
	if value == nil {
		return Attr("data-event", name)
	}
	return Attr("data-event", name) + " " + Attr("data-value", fmt.Sprint(value))
}

// Class joins the non-empty class names.
func Class(names ...string) string {
	out := names[:0:0]
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}
