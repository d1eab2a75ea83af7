package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediaonstake/agencysite/pkg/timeline"
)

func TestDefaultSite(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "MediaOnStake", s.Brand.Name)
	require.Len(t, s.Services.Categories, 2)
	assert.Len(t, s.Services.Categories[0].Services, 6)
	assert.Len(t, s.Services.Categories[1].Services, 5)
	assert.Len(t, s.Problems.Items, 5)
	assert.Len(t, s.Results.Stats, 4)
	assert.Len(t, s.Process.Events, 4)
	assert.Len(t, s.Portfolio.Projects, 5)
	assert.Len(t, s.Team.Members, 7)
	assert.Len(t, s.Testimonials.Items, 4)
	assert.Len(t, s.Contact.Options, 5)
	assert.Equal(t, timeline.IconTarget, s.Process.Events[1].Icon)
	assert.Equal(t, "01", s.EventNumber(0))
	assert.Equal(t, "04", s.EventNumber(3))
}

func TestMarkdownFields(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	assert.Contains(t, s.Process.Events[0].Description.HTML, "<strong>first priority</strong>")
	assert.NotContains(t, s.Process.Events[0].Description.HTML, "<p>")
	assert.Contains(t, s.Results.Intro.HTML, "<em>success stories</em>")
}

func TestDefaultSiteKeepsQuestionCopy(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	require.Len(t, s.Problems.Items, 5)
	assert.Equal(t, "Website getting no visitors?", s.Problems.Items[0].Description)
	assert.Equal(t, "Outdated & non-functional site?", s.Problems.Items[2].Description)
	assert.Equal(t, "Modern Website", s.Problems.Items[2].Solution)
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown("one *two*")
	require.NoError(t, err)
	assert.Equal(t, "one <em>two</em>", out)

	out, err = RenderMarkdown("a\n\nb")
	require.NoError(t, err)
	assert.Equal(t, "<p>a</p>\n<p>b</p>", out)

	out, err = RenderMarkdown("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}

func TestParseRejectsBadDocuments(t *testing.T) {
	_, err := Parse([]byte("brand: {name: X}\nunknown_key: 1\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("brand: {name: X}\ncontact: {options: [SEO]}\nprocess:\n  events:\n    - {title: A, icon: rocket}\n"))
	assert.ErrorContains(t, err, "rocket")

	_, err = Parse([]byte("brand: {name: X}\n"))
	assert.ErrorContains(t, err, "contact.options")
}

func TestParseAllowsEmptyCarousels(t *testing.T) {
	s, err := Parse([]byte("brand: {name: X}\ncontact: {options: [SEO]}\n"))
	require.NoError(t, err)
	assert.Empty(t, s.Portfolio.Projects)
	assert.Empty(t, s.Team.Members)
}

func TestFormatCompact(t *testing.T) {
	cases := map[int64]string{
		0:         "0",
		10:        "10",
		999:       "999",
		12000:     "12K",
		1500:      "2K",
		1_500_000: "1.5M",
		2_000_000: "2.0M",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatCompact(in), "FormatCompact(%d)", in)
	}
	assert.Equal(t, "12K+", Stat{Value: 12000, Suffix: "+"}.Display())
}

func TestMetricPercent(t *testing.T) {
	assert.Equal(t, 45.0, Metric{Value: "+45%"}.Percent())
	assert.Equal(t, 100.0, Metric{Value: "+450%"}.Percent())
	assert.Equal(t, 99.0, Metric{Value: "99%"}.Percent())
	assert.Equal(t, 100.0, Metric{Value: "fast"}.Percent())
	assert.Equal(t, "time Saved", Metric{Name: "timeSaved"}.Label())
}

func TestProjectHelpers(t *testing.T) {
	assert.Equal(t, "www.nhrwwo.in", Project{URL: "https://www.nhrwwo.in/"}.Host())
	assert.Equal(t, "Framework", TagRole(0))
	assert.Equal(t, "Integration", TagRole(7))
	assert.Equal(t, "SC", Initials("Shristi Chandra Choudhary"))
	assert.Equal(t, "", Initials("  "))
}

func TestStoreSwap(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)
	st := NewStore(s)
	require.NoError(t, st.Ready(context.Background()))

	var got *Site
	st.OnChange(func(n *Site) { got = n })

	next := *s
	next.Brand.Name = "Other"
	st.Swap(&next)

	assert.Equal(t, "Other", st.Site().Brand.Name)
	assert.Same(t, &next, got)
	assert.Equal(t, uint64(2), st.Version())
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("brand: {name: One}\ncontact: {options: [SEO]}\n"), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	st := NewStore(s)

	w, err := NewWatcher(st, path, nil)
	require.NoError(t, err)
	defer w.Close()
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// a broken write keeps the old snapshot
	require.NoError(t, os.WriteFile(path, []byte("brand: [\n"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, "One", st.Site().Brand.Name)

	require.NoError(t, os.WriteFile(path, []byte("brand: {name: Two}\ncontact: {options: [SEO]}\n"), 0o644))
	assert.Eventually(t, func() bool { return st.Site().Brand.Name == "Two" }, 2*time.Second, 10*time.Millisecond)
}

func TestReloadWaitsForRenamedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("brand: {name: One}\ncontact: {options: [SEO]}\n"), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)
	st := NewStore(s)
	w, err := NewWatcher(st, path, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.Remove(path))
	go func() {
		time.Sleep(40 * time.Millisecond)
		tmp := path + ".tmp"
		_ = os.WriteFile(tmp, []byte("brand: {name: Three}\ncontact: {options: [SEO]}\n"), 0o644)
		_ = os.Rename(tmp, path)
	}()

	w.reload(context.Background())
	assert.Equal(t, "Three", st.Site().Brand.Name)
}
