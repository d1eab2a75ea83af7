package site

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/mediaonstake/agencysite/pkg/clock"
)

// RobotsHandler serves robots.txt pointing at the sitemap.
func RobotsHandler(publicURL string) http.Handler {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nSitemap: %s/sitemap.xml\n", strings.TrimSuffix(publicURL, "/"))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(body))
	})
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	NS      string   `xml:"xmlns,attr"`
	URLs    []urlEntry
}

type urlEntry struct {
	XMLName    xml.Name `xml:"url"`
	Loc        string   `xml:"loc"`
	LastMod    string   `xml:"lastmod"`
	ChangeFreq string   `xml:"changefreq"`
	Priority   string   `xml:"priority"`
}

// SitemapHandler serves a one-page sitemap stamped with the current date.
func SitemapHandler(publicURL string, c clock.Clock) http.Handler {
	loc := strings.TrimSuffix(publicURL, "/") + "/"
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		set := urlSet{
			NS: "http://www.sitemaps.org/schemas/sitemap/0.9",
			URLs: []urlEntry{{
				Loc:        loc,
				LastMod:    c.Now().UTC().Format("2006-01-02"),
				ChangeFreq: "weekly",
				Priority:   "1.0",
			}},
		}
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		_, _ = w.Write([]byte(xml.Header))
		_ = xml.NewEncoder(w).Encode(set)
	})
}
