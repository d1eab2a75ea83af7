package content

import (
	"math"
	"strconv"
	"strings"
)

// FormatCompact abbreviates large counts: 12000 is "12K", 1500000 is "1.5M".
func FormatCompact(n int64) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(math.Round(float64(n)/1_000), 'f', 0, 64) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}

// Display renders the stat value with its prefix and suffix.
func (s Stat) Display() string {
	return s.Prefix + FormatCompact(s.Value) + s.Suffix
}

// Percent parses a metric like "+45%" into a bar width in [0,100].
// Unparseable values fill the bar.
func (m Metric) Percent() float64 {
	v := strings.TrimSpace(m.Value)
	v = strings.TrimPrefix(v, "+")
	v = strings.TrimSuffix(v, "%")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) {
		return 100
	}
	return math.Max(0, math.Min(f, 100))
}

// Label turns a camelCase metric name into words.
func (m Metric) Label() string {
	var b strings.Builder
	for i, r := range m.Name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Host returns the project URL without scheme or path.
func (p Project) Host() string {
	h := strings.TrimPrefix(strings.TrimPrefix(p.URL, "https://"), "http://")
	if i := strings.IndexByte(h, '/'); i >= 0 {
		h = h[:i]
	}
	return h
}

// TagRole labels the tech tag at position i.
func TagRole(i int) string {
	switch i {
	case 0:
		return "Framework"
	case 1:
		return "Frontend"
	case 2:
		return "Backend"
	default:
		return "Integration"
	}
}

// Initials returns up to two initials for an avatar placeholder.
func Initials(name string) string {
	var out []rune
	for _, f := range strings.Fields(name) {
		out = append(out, []rune(strings.ToUpper(f))[0])
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
