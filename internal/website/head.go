package website

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

// RenderHead generates the <head> with SEO, Open Graph and JSON-LD.
func RenderHead(cfg PageConfig, customCSS string) string {
	var sb strings.Builder

	lang := cfg.Language
	if lang == "" {
		lang = "en"
	}
	themeColor := cfg.ThemeColor
	if themeColor == "" {
		themeColor = Colors["bg"]
	}

	sb.WriteString("<head>\n")
	sb.WriteString(`<meta charset="UTF-8">` + "\n")
	sb.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">` + "\n")
	sb.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(cfg.Title)))

	if cfg.Description != "" {
		sb.WriteString(fmt.Sprintf(`<meta name="description" content="%s">`+"\n", html.EscapeString(cfg.Description)))
	}
	if len(cfg.Keywords) > 0 {
		sb.WriteString(fmt.Sprintf(`<meta name="keywords" content="%s">`+"\n", html.EscapeString(strings.Join(cfg.Keywords, ", "))))
	}
	if cfg.URL != "" {
		sb.WriteString(fmt.Sprintf(`<link rel="canonical" href="%s">`+"\n", html.EscapeString(cfg.URL)))
	}
	sb.WriteString(fmt.Sprintf(`<meta name="theme-color" content="%s">`+"\n", html.EscapeString(themeColor)))
	sb.WriteString(`<meta name="robots" content="index, follow">` + "\n")

	sb.WriteString(renderOpenGraph(cfg, lang))
	sb.WriteString(renderJSONLD(cfg))

	if cfg.Favicon != "" {
		sb.WriteString(fmt.Sprintf(`<link rel="icon" href="%s">`+"\n", html.EscapeString(cfg.Favicon)))
	}

	sb.WriteString("<style>\n")
	sb.WriteString(RenderStyles())
	if customCSS != "" {
		sb.WriteString("\n")
		sb.WriteString(customCSS)
	}
	sb.WriteString("\n</style>\n")
	sb.WriteString("</head>\n")
	return sb.String()
}

func renderOpenGraph(cfg PageConfig, lang string) string {
	var sb strings.Builder
	meta := func(prop, v string) {
		if v != "" {
			sb.WriteString(fmt.Sprintf(`<meta property="%s" content="%s">`+"\n", prop, html.EscapeString(v)))
		}
	}
	meta("og:type", "website")
	meta("og:title", cfg.Title)
	meta("og:description", cfg.Description)
	meta("og:url", cfg.URL)
	meta("og:image", cfg.OGImage)
	meta("og:locale", lang)
	return sb.String()
}

type jsonLDAddress struct {
	Type     string `json:"@type"`
	Street   string `json:"streetAddress,omitempty"`
	Locality string `json:"addressLocality,omitempty"`
}

type jsonLD struct {
	Context     string         `json:"@context"`
	Type        string         `json:"@type"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	URL         string         `json:"url,omitempty"`
	Logo        string         `json:"logo,omitempty"`
	Telephone   string         `json:"telephone,omitempty"`
	Email       string         `json:"email,omitempty"`
	Address     *jsonLDAddress `json:"address,omitempty"`
}

func renderJSONLD(cfg PageConfig) string {
	org := cfg.Organization
	doc := jsonLD{
		Context:     "https://schema.org",
		Type:        "ProfessionalService",
		Name:        org.Name,
		Description: cfg.Description,
		URL:         cfg.URL,
		Logo:        org.Logo,
		Telephone:   org.Telephone,
		Email:       org.Email,
	}
	if doc.Name == "" {
		doc.Name = cfg.Title
	}
	if org.Street != "" || org.Locality != "" {
		doc.Address = &jsonLDAddress{Type: "PostalAddress", Street: org.Street, Locality: org.Locality}
	}
	// encoding/json escapes <, > and & so the block cannot close the script tag.
	b, err := json.Marshal(doc)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(`<script type="application/ld+json">%s</script>`+"\n", b)
}

// RenderDocument wraps body in a complete HTML document and loads the live
// script when one is configured.
func RenderDocument(cfg PageConfig, customCSS, body string) string {
	lang := cfg.Language
	if lang == "" {
		lang = "en"
	}
	script := ""
	if cfg.Script != "" {
		script = fmt.Sprintf(`<script src="%s" defer></script>`+"\n", html.EscapeString(cfg.Script))
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="%s">
%s<body>
%s
<div class="toaster" id="toaster" role="status" aria-live="polite"></div>
%s</body>
</html>`, html.EscapeString(lang), RenderHead(cfg, customCSS), body, script)
}
