// Package web serves the training builder screen as server-rendered HTML.
// Selection state travels in the query string (sport, week, nav), so every
// link on the page is a plain GET.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/albapepper/sportspeed/internal/builder"
	"github.com/albapepper/sportspeed/internal/catalog"
	"github.com/albapepper/sportspeed/internal/performance"
	"github.com/albapepper/sportspeed/internal/session"
)

//go:embed templates/*.html content/*.md
var assets embed.FS

// Raw HTML in the markdown is escaped (WithUnsafe is not set).
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// Page renders the builder screen.
type Page struct {
	tpl    *template.Template
	intro  template.HTML
	gen    *session.Generator
	proj   *performance.Projector
	logger *slog.Logger
}

type pageData struct {
	View        builder.View
	Intro       template.HTML
	Week        int
	Progression []performance.Point
	Bars        []improvementBar
}

// improvementBar is one row of the improvement chart. Width is a percentage
// of the widest bar.
type improvementBar struct {
	Sport string
	Pct   float64
	Width int
}

func improvementBars(imps []performance.Improvement) []improvementBar {
	maxPct := 0.0
	for _, imp := range imps {
		maxPct = max(maxPct, imp.AvgImprovement)
	}
	bars := make([]improvementBar, len(imps))
	for i, imp := range imps {
		bars[i] = improvementBar{Sport: imp.Sport, Pct: imp.AvgImprovement}
		if maxPct > 0 {
			bars[i].Width = int(imp.AvgImprovement / maxPct * 100)
		}
	}
	return bars
}

// New parses the embedded template and renders the intro copy once. A nil
// generator or projector uses the global random source.
func New(gen *session.Generator, proj *performance.Projector, logger *slog.Logger) (*Page, error) {
	tpl, err := template.ParseFS(assets, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	md, err := assets.ReadFile("content/intro.md")
	if err != nil {
		return nil, fmt.Errorf("read intro: %w", err)
	}
	intro, err := RenderMarkdown(md)
	if err != nil {
		return nil, err
	}
	if gen == nil {
		gen = session.Default
	}
	if proj == nil {
		proj = performance.Default
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Page{tpl: tpl, intro: intro, gen: gen, proj: proj, logger: logger}, nil
}

// RenderMarkdown converts markdown to HTML safe for template output.
func RenderMarkdown(md []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert(md, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// ServeHTTP renders the screen for the selection in the query string. An
// unknown sport shows the sport grid with nothing selected.
func (p *Page) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	state, err := builder.ParseQuery(r.URL.Query())
	if err != nil {
		http.Error(w, "week must be an integer", http.StatusBadRequest)
		return
	}
	if state.Sport != "" && !catalog.Known(state.Sport) {
		state.Select("")
	}

	var buf bytes.Buffer
	report := p.proj.Report()
	data := pageData{
		View:        state.Render(p.gen),
		Intro:       p.intro,
		Week:        state.Week,
		Progression: report.Progression,
		Bars:        improvementBars(report.Improvements),
	}
	if err := p.tpl.Execute(&buf, data); err != nil {
		p.logger.Error("Render builder page failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}
