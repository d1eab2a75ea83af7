// Package content holds the site copy and the item lists the live sections
// page through.
//
// The default copy is embedded from site.yaml. A file with the same shape can
// replace it at startup and, in development, be reloaded on change.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mediaonstake/agencysite/pkg/timeline"
)

//go:embed site.yaml
var defaultSite []byte

// Site is the full page copy.
type Site struct {
	Brand        Brand        `yaml:"brand"`
	Nav          []Link       `yaml:"nav"`
	CTAMessage   string       `yaml:"cta_message"`
	Hero         Hero         `yaml:"hero"`
	Problems     Problems     `yaml:"problems"`
	Services     Services     `yaml:"services"`
	Results      Results      `yaml:"results"`
	Process      Process      `yaml:"process"`
	Portfolio    Portfolio    `yaml:"portfolio"`
	Team         Team         `yaml:"team"`
	Testimonials Testimonials `yaml:"testimonials"`
	Contact      Contact      `yaml:"contact"`
	Footer       Footer       `yaml:"footer"`
}

type Brand struct {
	Name        string   `yaml:"name"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	URL         string   `yaml:"url"`
	Logo        string   `yaml:"logo"`
	Tagline     string   `yaml:"tagline"`
}

type Link struct {
	Name  string `yaml:"name"`
	Href  string `yaml:"href"`
	Badge string `yaml:"badge,omitempty"`
}

// Heading is the eyebrow, title and intro shared by most sections.
type Heading struct {
	Eyebrow string   `yaml:"eyebrow"`
	Heading string   `yaml:"heading"`
	Intro   Markdown `yaml:"intro"`
}

type Hero struct {
	Headline  string   `yaml:"headline"`
	Highlight string   `yaml:"highlight"`
	Lead      string   `yaml:"lead"`
	Phrases   []string `yaml:"phrases"`
	Summary   Markdown `yaml:"summary"`
}

type Problems struct {
	Heading `yaml:",inline"`
	CTA     string    `yaml:"cta"`
	CTANote string    `yaml:"cta_note"`
	Items   []Problem `yaml:"items"`
}

type Problem struct {
	Title               string `yaml:"title"`
	Description         string `yaml:"description"`
	Solution            string `yaml:"solution"`
	SolutionDescription string `yaml:"solution_description"`
}

type Services struct {
	Heading    `yaml:",inline"`
	Categories []ServiceCategory `yaml:"categories"`
}

type ServiceCategory struct {
	Title    string    `yaml:"title"`
	Accent   string    `yaml:"accent"`
	Services []Service `yaml:"services"`
}

type Service struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tools       []string `yaml:"tools"`
	Result      string   `yaml:"result"`
}

type Results struct {
	Heading    `yaml:",inline"`
	Stats      []Stat      `yaml:"stats"`
	Highlights []Highlight `yaml:"highlights"`
}

type Stat struct {
	Value  int64  `yaml:"value"`
	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix"`
	Label  string `yaml:"label"`
}

type Highlight struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

type Process struct {
	Title    string  `yaml:"title"`
	Subtitle string  `yaml:"subtitle"`
	Events   []Event `yaml:"events"`
}

// Event is one process step. Icon names are checked at load time.
type Event struct {
	Number      string        `yaml:"number"`
	Title       string        `yaml:"title"`
	Subtitle    string        `yaml:"subtitle"`
	Description Markdown      `yaml:"description"`
	Details     []string      `yaml:"details"`
	Icon        timeline.Icon `yaml:"icon"`
}

type Portfolio struct {
	Heading  `yaml:",inline"`
	Projects []Project `yaml:"projects"`
}

type Project struct {
	Category    string   `yaml:"category"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	URL         string   `yaml:"url"`
	Metrics     []Metric `yaml:"metrics"`
	Tags        []string `yaml:"tags"`
}

type Metric struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type Team struct {
	Title   string   `yaml:"title"`
	Members []Member `yaml:"members"`
}

type Member struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Image string `yaml:"image"`
	Bio   string `yaml:"bio"`
}

type Testimonials struct {
	Heading `yaml:",inline"`
	Items   []Testimonial `yaml:"items"`
}

type Testimonial struct {
	Name    string   `yaml:"name"`
	Role    string   `yaml:"role"`
	Image   string   `yaml:"image"`
	Rating  int      `yaml:"rating"`
	Metric  string   `yaml:"metric"`
	Content Markdown `yaml:"content"`
}

type Contact struct {
	Heading      `yaml:",inline"`
	Question     string   `yaml:"question"`
	Options      []string `yaml:"options"`
	Phone        string   `yaml:"phone"`
	PhoneDisplay string   `yaml:"phone_display"`
	Email        string   `yaml:"email"`
	Office       string   `yaml:"office"`
	Region       string   `yaml:"region"`
	Hours        string   `yaml:"hours"`
	MapURL       string   `yaml:"map_url"`
}

type Footer struct {
	Services []Link `yaml:"services"`
	Company  []Link `yaml:"company"`
	Social   []Link `yaml:"social"`
}

// Default returns the embedded copy.
func Default() (*Site, error) {
	return Parse(defaultSite)
}

// Parse decodes and checks a site document.
func Parse(data []byte) (*Site, error) {
	var s Site
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads and parses a site document from disk.
func LoadFile(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	return Parse(data)
}

// Validate checks what the live sections depend on. Empty carousels are
// allowed; they render nothing.
func (s *Site) Validate() error {
	var errs []error
	if s.Brand.Name == "" {
		errs = append(errs, errors.New("content: brand.name is required"))
	}
	if len(s.Contact.Options) == 0 {
		errs = append(errs, errors.New("content: contact.options must list at least one service"))
	}
	for i, t := range s.Testimonials.Items {
		if t.Rating < 0 || t.Rating > 5 {
			errs = append(errs, fmt.Errorf("content: testimonials.items[%d].rating must be 0-5", i))
		}
	}
	for i, p := range s.Portfolio.Projects {
		if !strings.HasPrefix(p.URL, "https://") && !strings.HasPrefix(p.URL, "http://") {
			errs = append(errs, fmt.Errorf("content: portfolio.projects[%d].url must be http(s)", i))
		}
	}
	seen := make(map[string]bool, len(s.Team.Members))
	for i, m := range s.Team.Members {
		if m.ID == "" || seen[m.ID] {
			errs = append(errs, fmt.Errorf("content: team.members[%d].id must be unique and set", i))
		}
		seen[m.ID] = true
	}
	return errors.Join(errs...)
}

// EventNumber is the badge for process step i, "01" when the copy leaves it blank.
func (s *Site) EventNumber(i int) string {
	if i >= 0 && i < len(s.Process.Events) && s.Process.Events[i].Number != "" {
		return s.Process.Events[i].Number
	}
	return fmt.Sprintf("%02d", i+1)
}
