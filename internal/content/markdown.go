package content

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"
)

// md renders copy fields. Raw HTML in the source is dropped.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Typographer),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

var singleParagraph = regexp.MustCompile(`(?s)^<p>(.*)</p>\n?$`)

// Markdown is a copy field written in Markdown. HTML holds the rendered
// fragment; a single paragraph is unwrapped so it can sit inside inline
// markup.
type Markdown struct {
	Source string
	HTML   string
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Markdown) UnmarshalYAML(node *yaml.Node) error {
	var src string
	if err := node.Decode(&src); err != nil {
		return err
	}
	out, err := RenderMarkdown(src)
	if err != nil {
		return err
	}
	m.Source = src
	m.HTML = out
	return nil
}

// MarshalYAML writes the source back out.
func (m Markdown) MarshalYAML() (any, error) {
	return m.Source, nil
}

// RenderMarkdown converts src to an HTML fragment.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(strings.TrimSpace(src)), &buf); err != nil {
		return "", err
	}
	out := buf.String()
	if strings.Count(out, "<p>") == 1 {
		if m := singleParagraph.FindStringSubmatch(out); m != nil {
			return m[1], nil
		}
	}
	return strings.TrimSpace(out), nil
}
