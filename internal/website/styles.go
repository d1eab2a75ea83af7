package website

import (
	"fmt"
	"sort"
	"strings"
)

// Colors is the neon-on-black palette.
var Colors = map[string]string{
	"bg":        "#050608",
	"bgAlt":     "#0b0f14",
	"bgCard":    "rgba(15,23,42,0.55)",
	"border":    "#1f2937",
	"text":      "#f8fafc",
	"textMuted": "#94a3b8",
	"textDim":   "#64748b",
	"primary":   "#00f7ff",
	"secondary": "#a855f7",
	"accent":    "#7cf9ff",
	"success":   "#22c55e",
	"danger":    "#f87171",
}

// FontFamily uses the system stack.
var FontFamily = `system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif`
var FontMono = `'SF Mono', SFMono-Regular, ui-monospace, 'DejaVu Sans Mono', Menlo, Consolas, monospace`

// StyleOption customizes the generated CSS.
type StyleOption func(*styleConfig)

type styleConfig struct {
	customColors      map[string]string
	includeReset      bool
	includeAnimations bool
}

// WithCustomColors overrides palette entries.
func WithCustomColors(colors map[string]string) StyleOption {
	return func(cfg *styleConfig) {
		for k, v := range colors {
			cfg.customColors[k] = v
		}
	}
}

// WithAnimations toggles keyframes and transitions.
func WithAnimations(include bool) StyleOption {
	return func(cfg *styleConfig) {
		cfg.includeAnimations = include
	}
}

// RenderStyles generates the page CSS. Output is deterministic.
func RenderStyles(opts ...StyleOption) string {
	cfg := &styleConfig{
		customColors:      make(map[string]string),
		includeReset:      true,
		includeAnimations: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	colors := make(map[string]string, len(Colors))
	for k, v := range Colors {
		colors[k] = v
	}
	for k, v := range cfg.customColors {
		colors[k] = v
	}

	var sb strings.Builder
	if cfg.includeReset {
		sb.WriteString(cssReset())
	}
	sb.WriteString(cssVariables(colors))
	sb.WriteString(cssBase())
	sb.WriteString(cssLayout())
	sb.WriteString(cssButtons())
	sb.WriteString(cssNavbar())
	sb.WriteString(cssHero())
	sb.WriteString(cssCards())
	sb.WriteString(cssTimeline())
	sb.WriteString(cssPortfolio())
	sb.WriteString(cssCarousels())
	sb.WriteString(cssContact())
	sb.WriteString(cssFooter())
	if cfg.includeAnimations {
		sb.WriteString(cssAnimations())
	}
	sb.WriteString(cssAccessibility())
	sb.WriteString(cssResponsive())
	return sb.String()
}

func cssReset() string {
	return `
*,*::before,*::after{box-sizing:border-box;margin:0;padding:0}
html{-webkit-text-size-adjust:100%;scroll-behavior:smooth}
body{line-height:1.6;-webkit-font-smoothing:antialiased}
img,svg,iframe{display:block;max-width:100%}
input,button,textarea,select{font:inherit;color:inherit}
button{background:none;border:none;cursor:pointer}
a{color:inherit;text-decoration:none}
ul,ol{list-style:none}
`
}

func cssVariables(colors map[string]string) string {
	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)
	vars := make([]string, 0, len(names))
	for _, name := range names {
		vars = append(vars, fmt.Sprintf("--color-%s:%s", name, colors[name]))
	}
	return fmt.Sprintf(":root{%s;--font-sans:%s;--font-mono:%s}\n", strings.Join(vars, ";"), FontFamily, FontMono)
}

func cssBase() string {
	return `
body{font-family:var(--font-sans);background:var(--color-bg);color:var(--color-text);min-height:100vh}
body.locked{overflow:hidden}
::selection{background:var(--color-primary);color:#000}
h1{font-size:clamp(2.4rem,6vw,4.5rem);font-weight:800;line-height:1.05;letter-spacing:-0.02em}
h2{font-size:clamp(2rem,4vw,3.2rem);font-weight:800;line-height:1.1}
h3{font-size:1.25rem;font-weight:700}
p{color:var(--color-textMuted)}
.neon-text{background:linear-gradient(90deg,var(--color-primary),#38bdf8,var(--color-secondary));-webkit-background-clip:text;background-clip:text;-webkit-text-fill-color:transparent}
.eyebrow{display:block;color:var(--color-primary);font-size:0.8rem;font-weight:700;letter-spacing:0.2em;text-transform:uppercase;margin-bottom:0.75rem}
.muted{color:var(--color-textMuted)}
`
}

func cssLayout() string {
	return `
.container{width:100%;max-width:1200px;margin:0 auto;padding:0 1rem}
.section{padding:4rem 0;position:relative}
.section-head{text-align:center;max-width:720px;margin:0 auto 3rem}
.section-head p{margin-top:1rem;font-size:1.1rem}
.grid{display:grid;gap:1.25rem;grid-template-columns:1fr}
.row{display:flex;align-items:center;gap:0.75rem}
.between{justify-content:space-between}
.wrap{flex-wrap:wrap}
`
}

func cssButtons() string {
	return `
.btn{display:inline-flex;align-items:center;justify-content:center;gap:0.5rem;padding:0.8rem 1.4rem;font-weight:700;min-height:2.75rem;border:1px solid transparent;transition:all .2s ease}
.btn:disabled{opacity:.6;cursor:not-allowed}
.btn-primary{background:var(--color-primary);color:#000}
.btn-primary:hover{box-shadow:0 0 24px rgba(0,247,255,.5)}
.btn-outline{border-color:var(--color-border);color:var(--color-text)}
.btn-outline:hover{border-color:var(--color-primary);color:var(--color-primary)}
.btn-whatsapp{background:#16a34a;color:#fff}
.icon-btn{width:2.75rem;height:2.75rem;display:inline-flex;align-items:center;justify-content:center;border:1px solid var(--color-border)}
.icon-btn:hover{border-color:var(--color-primary)}
.dots{display:flex;gap:0.5rem;justify-content:center}
.dot{width:0.75rem;height:0.75rem;background:rgba(124,249,255,.25)}
.dot.active{background:var(--color-primary);box-shadow:0 0 12px var(--color-primary)}
`
}

func cssNavbar() string {
	return `
.nav{position:fixed;top:0;left:0;right:0;z-index:100;transition:background .3s}
.nav.scrolled{background:rgba(5,6,8,.85);backdrop-filter:blur(16px);border-bottom:1px solid var(--color-border)}
.nav-inner{display:flex;align-items:center;justify-content:space-between;height:5rem}
.logo{display:flex;align-items:center;gap:0.5rem;font-weight:800;font-size:1.25rem}
.logo img{width:2rem;height:2rem;object-fit:contain}
.logo .dot-accent{color:var(--color-primary)}
.nav-links{display:none;gap:2rem}
.nav-links a{color:var(--color-textMuted)}
.nav-links a:hover{color:var(--color-primary)}
.nav-cta{display:none}
.mobile-menu{border-top:1px solid var(--color-border);background:rgba(5,6,8,.97);padding:1rem}
.mobile-menu a{display:block;padding:0.75rem 0;color:var(--color-textMuted)}
`
}

func cssHero() string {
	return `
.hero{min-height:100vh;display:flex;align-items:center;text-align:center;padding-top:6rem;background:radial-gradient(circle at 50% 30%,rgba(0,247,255,.12),transparent 60%)}
.hero .lead{font-size:1.4rem;margin:1.5rem 0}
.typed{color:var(--color-primary);font-weight:700;border-right:2px solid var(--color-primary);padding-right:2px}
.hero .summary{max-width:640px;margin:0 auto 2rem;font-size:1.1rem}
.hero-actions{display:flex;gap:1rem;justify-content:center;flex-wrap:wrap}
`
}

func cssCards() string {
	return `
.glass{background:var(--color-bgCard);border:1px solid rgba(255,255,255,.08);backdrop-filter:blur(14px)}
.glass-hover{transition:border-color .3s,transform .3s}
.glass-hover:hover{border-color:rgba(0,247,255,.4);transform:translateY(-4px)}
.flip{position:relative;height:20rem;perspective:1000px}
.flip-inner{position:relative;width:100%;height:100%;transition:transform .6s;transform-style:preserve-3d}
.flip:hover .flip-inner,.flip:focus-within .flip-inner{transform:rotateY(180deg)}
.flip-face{position:absolute;inset:0;display:flex;flex-direction:column;align-items:center;justify-content:center;text-align:center;padding:1.5rem;backface-visibility:hidden}
.flip-back{transform:rotateY(180deg);border-color:rgba(0,247,255,.35)}
.service-card{padding:1.5rem;cursor:pointer;text-align:left;width:100%}
.service-card .tools{display:flex;flex-wrap:wrap;gap:0.5rem;margin:1rem 0}
.chip{font-size:0.75rem;padding:0.25rem 0.6rem;border:1px solid var(--color-border);color:var(--color-textMuted)}
.accent-secondary .chip{border-color:rgba(168,85,247,.4)}
.service-result{color:var(--color-primary);font-weight:700}
.accent-secondary .service-result{color:var(--color-secondary)}
.stat-card{padding:2rem;text-align:center}
.stat-value{font-size:3rem;font-weight:800;color:var(--color-primary);font-variant-numeric:tabular-nums}
.bar{height:0.35rem;background:rgba(255,255,255,.08);margin-top:0.5rem}
.bar>span{display:block;height:100%;background:linear-gradient(90deg,var(--color-primary),var(--color-secondary))}
`
}

func cssTimeline() string {
	return `
.timeline{position:relative;max-width:1000px;margin:0 auto}
.timeline-line{position:absolute;left:1.25rem;top:0;bottom:0;border-left-width:3px;border-left-color:#1f2937}
.timeline-progress{position:absolute;left:1.25rem;top:0;width:3px;background:var(--color-primary);box-shadow:0 0 12px var(--color-primary);transition:height .4s}
.timeline-item{position:relative;padding-left:3.5rem;margin-bottom:2.5rem}
.timeline-marker{position:absolute;left:0;top:0.5rem;width:2.5rem;height:2.5rem;display:flex;align-items:center;justify-content:center;border:1px solid #3f3f46;background:#18181b;color:#a1a1aa}
.timeline-item.reached .timeline-marker{border-color:var(--color-primary);color:var(--color-primary);box-shadow:0 0 20px rgba(0,247,255,.5)}
.timeline-card{padding:1.5rem}
.effect-glow:hover{box-shadow:0 0 30px rgba(0,247,255,.25)}
.effect-shadow:hover{box-shadow:0 20px 40px rgba(0,0,0,.6)}
.effect-bounce:hover{transform:translateY(-6px)}
.step-meta{font-size:0.85rem;color:#a1a1aa}
.step-meta b{color:var(--color-primary)}
.details li::before{content:"\2713";color:var(--color-primary);margin-right:0.5rem}
`
}

func cssPortfolio() string {
	return `
.browser{border-bottom:1px solid rgba(255,255,255,.1);padding:0.75rem 1rem;font-family:var(--font-mono);font-size:0.85rem}
.preview-frame{position:relative;aspect-ratio:16/9;background:#000;overflow:hidden;cursor:pointer}
.preview-frame img{width:100%;height:100%;object-fit:cover;transition:opacity .4s}
.preview-frame img.loading{opacity:0}
.preview-cta{position:absolute;inset:0;display:flex;flex-direction:column;align-items:center;justify-content:center;background:rgba(0,0,0,.45);opacity:0;transition:opacity .3s}
.preview-frame:hover .preview-cta{opacity:1}
.counter{font-size:1.5rem;font-weight:700}
.counter span{color:var(--color-textDim)}
.overlay{position:fixed;inset:0;z-index:9999;background:rgba(0,0,0,.95);display:flex;align-items:center;justify-content:center;padding:1rem}
.overlay-panel{width:100%;max-width:1200px;height:90vh;display:flex;flex-direction:column}
.overlay-panel iframe{flex:1;width:100%;border:0;background:#fff}
.spinner{width:2rem;height:2rem;border:3px solid rgba(0,247,255,.25);border-top-color:var(--color-primary);border-radius:50%}
.tech-item{display:flex;align-items:center;gap:0.75rem;padding:0.75rem;border:1px solid var(--color-border)}
.tech-item small{margin-left:auto;color:var(--color-textDim)}
.project-tile{padding:1.25rem;text-align:left;width:100%}
.project-tile.active{outline:2px solid rgba(34,211,238,.7);box-shadow:0 0 32px rgba(56,189,248,.35)}
.metric-label{text-transform:capitalize}
`
}

func cssCarousels() string {
	return `
.team-stage{position:relative;height:31rem;display:flex;align-items:center;justify-content:center;overflow:hidden}
.team-card{position:absolute;width:17.5rem;height:23.75rem;overflow:hidden;transition:transform .8s cubic-bezier(.25,.46,.45,.94),opacity .8s,filter .8s;border:2px solid transparent;background:#0b0f14}
.team-card img{width:100%;height:100%;object-fit:cover}
.team-card .initials{width:100%;height:100%;display:flex;align-items:center;justify-content:center;font-size:4rem;font-weight:800;color:var(--color-accent)}
.pos-center{transform:scale(1.1);z-index:10;border-color:var(--color-accent);box-shadow:0 0 25px rgba(124,249,255,.4)}
.pos-left{transform:translateX(-12.25rem) scale(.85);opacity:.6;filter:grayscale(100%)}
.pos-right{transform:translateX(12.25rem) scale(.85);opacity:.6;filter:grayscale(100%)}
.pos-hidden{display:none}
.team-title{font-size:clamp(2.5rem,8vw,4.5rem);font-weight:900;text-align:center;color:var(--color-accent);text-shadow:0 0 20px rgba(124,249,255,.5)}
.team-info{text-align:center;margin-top:1rem}
.team-info h3{color:var(--color-accent);font-size:1.8rem}
.team-info p{text-transform:uppercase;letter-spacing:0.08em}
.testimonial{padding:2.5rem;max-width:56rem;margin:0 auto}
.testimonial blockquote{font-size:1.25rem;font-style:italic;margin:1.5rem 0}
.stars{color:#facc15;letter-spacing:0.2em}
.avatar{width:3.5rem;height:3.5rem;object-fit:cover;border:2px solid rgba(0,247,255,.3)}
.pill{padding:0.5rem 1rem;border:1px solid rgba(0,247,255,.25);color:var(--color-primary);font-size:0.85rem}
`
}

func cssContact() string {
	return `
.contact-grid{display:grid;gap:2rem;grid-template-columns:1fr}
.wizard{padding:2rem}
.option{display:flex;justify-content:space-between;align-items:center;width:100%;padding:1rem 1.25rem;border:1px solid var(--color-border);margin-bottom:0.75rem;text-align:left}
.option:hover{border-color:var(--color-primary)}
.field{margin-bottom:1rem}
.field label{display:block;font-size:0.9rem;font-weight:600;margin-bottom:0.4rem}
.field input,.field textarea{width:100%;padding:0.75rem 1rem;background:rgba(0,0,0,.35);border:1px solid var(--color-border)}
.field input:focus,.field textarea:focus{outline:none;border-color:var(--color-primary)}
.summary-box{padding:1rem;border:1px solid rgba(0,247,255,.25);margin-bottom:1.5rem}
.hint{padding:1rem;border:1px solid rgba(59,130,246,.35);background:rgba(59,130,246,.08);margin:1rem 0;font-size:0.9rem}
.success{text-align:center}
.success .check{font-size:2.5rem;color:var(--color-success)}
.contact-link{display:flex;gap:1rem;align-items:center;padding:1rem;border:1px solid var(--color-border);margin-bottom:0.75rem}
.contact-link:hover{border-color:var(--color-primary)}
.map{height:16rem;border:0;width:100%}
`
}

func cssFooter() string {
	return `
.footer{border-top:1px solid var(--color-border);padding:5rem 0 2.5rem}
.footer-grid{display:grid;gap:2.5rem;grid-template-columns:1fr}
.footer h4{border-bottom:1px solid var(--color-border);padding-bottom:0.5rem;margin-bottom:1.25rem}
.footer li{margin-bottom:0.6rem}
.footer a:hover{color:var(--color-primary)}
.tagline{border-left:2px solid var(--color-primary);padding:0.75rem 1rem;margin:1.5rem 0;font-size:0.9rem}
.badge-new{font-size:0.7rem;padding:0.15rem 0.5rem;border:1px solid #16a34a;color:#16a34a;margin-left:0.5rem}
.footer-bottom{display:flex;justify-content:space-between;flex-wrap:wrap;gap:1rem;margin-top:3rem;font-size:0.8rem;color:var(--color-textMuted)}
.toaster{position:fixed;right:1rem;bottom:1rem;z-index:10001;display:flex;flex-direction:column;gap:0.5rem;max-width:22rem}
.toast{padding:1rem 1.25rem;background:#0b0f14;border:1px solid var(--color-border);box-shadow:0 10px 30px rgba(0,0,0,.5)}
.toast.destructive{border-color:var(--color-danger);background:#2a0b0b}
.toast strong{display:block;margin-bottom:0.25rem}
`
}

func cssAnimations() string {
	return `
@keyframes blink{50%{border-color:transparent}}
@keyframes spin{to{transform:rotate(360deg)}}
@keyframes reveal-fade{from{opacity:0}to{opacity:1}}
@keyframes reveal-slide{from{opacity:0;transform:translateY(30px)}to{opacity:1;transform:none}}
@keyframes reveal-scale{from{opacity:0;transform:scale(.9)}to{opacity:1;transform:none}}
@keyframes reveal-flip{from{opacity:0;transform:rotateX(60deg)}to{opacity:1;transform:none}}
.typed{animation:blink 1s step-end infinite}
.spinner{animation:spin 1s linear infinite}
.reveal-fade{animation:reveal-fade .6s ease both}
.reveal-slide{animation:reveal-slide .6s ease both}
.reveal-scale{animation:reveal-scale .6s ease both}
.reveal-flip{animation:reveal-flip .6s ease both}
@media(prefers-reduced-motion:reduce){*{animation-duration:0.01ms!important;animation-iteration-count:1!important;transition-duration:0.01ms!important}}
`
}

func cssAccessibility() string {
	return `
.sr-only{position:absolute;width:1px;height:1px;overflow:hidden;clip:rect(0,0,0,0);white-space:nowrap}
.skip-link{position:absolute;top:-40px;left:0;background:var(--color-primary);color:#000;padding:0.5rem 1rem;z-index:1000}
.skip-link:focus{top:0}
:focus-visible{outline:2px solid var(--color-primary);outline-offset:2px}
`
}

func cssResponsive() string {
	return `
@media(min-width:640px){
.grid-2{grid-template-columns:repeat(2,1fr)}
.footer-grid{grid-template-columns:2fr 1fr 1fr}
}
@media(min-width:768px){
.container{padding:0 1.5rem}
.section{padding:6rem 0}
.nav-links{display:flex}
.nav-cta{display:inline-flex}
.menu-toggle{display:none}
.mobile-menu{display:none}
.grid-3{grid-template-columns:repeat(3,1fr)}
.grid-4{grid-template-columns:repeat(4,1fr)}
.grid-5{grid-template-columns:repeat(5,1fr)}
.contact-grid{grid-template-columns:3fr 2fr}
.timeline-line,.timeline-progress{left:50%}
.timeline-item{width:50%;padding-left:0;padding-right:3.5rem}
.timeline-item.right{margin-left:50%;padding-left:3.5rem;padding-right:0}
.timeline-item .timeline-marker{left:auto;right:-1.25rem}
.timeline-item.right .timeline-marker{left:-1.25rem;right:auto}
}
`
}
