package text

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/pkg/errors"

	"github.com/DaanHessen/brainrot-tui/internal/engine"
	"github.com/DaanHessen/brainrot-tui/internal/store"
)

// Renderer turns markdown into terminal text.
type Renderer interface {
	Render(md string) (string, error)
}

type glamourRenderer struct{ tr *glamour.TermRenderer }

// NewGlamourRenderer renders markdown with glamour's dark style, wrapped at width columns.
func NewGlamourRenderer(width int) (Renderer, error) {
	if width <= 0 {
		width = 80
	}
	tr, err := glamour.NewTermRenderer(glamour.WithStandardStyle("dark"), glamour.WithWordWrap(width))
	if err != nil {
		return nil, errors.Wrap(err, "glamour renderer")
	}
	return &glamourRenderer{tr: tr}, nil
}

func (g *glamourRenderer) Render(md string) (string, error) { return g.tr.Render(md) }

// plainRenderer is the offline fallback: markdown passes through untouched.
type plainRenderer struct{}

func NewPlainRenderer() Renderer { return plainRenderer{} }

func (plainRenderer) Render(md string) (string, error) { return md, nil }

// WithFallback returns a renderer that prefers primary and falls back on error or when primary is nil.
func WithFallback(primary, fallback Renderer) Renderer {
	return &fallbackRenderer{p: primary, f: fallback}
}

type fallbackRenderer struct{ p, f Renderer }

func (r *fallbackRenderer) Render(md string) (string, error) {
	if r.p == nil {
		return r.f.Render(md)
	}
	if s, err := r.p.Render(md); err == nil {
		return s, nil
	}
	return r.f.Render(md)
}

// CastSheet lists the whole roster, marking the characters in selected.
func CastSheet(cast, selected []engine.Character) string {
	picked := map[string]bool{}
	for _, c := range selected {
		picked[c.Name] = true
	}
	var b strings.Builder
	b.WriteString("# MEET THE CAST\n\n")
	b.WriteString("| | Character | Catchphrase | In clip |\n|---|---|---|---|\n")
	for _, c := range cast {
		mark := ""
		if picked[c.Name] {
			mark = "✓"
		}
		fmt.Fprintf(&b, "| %s | **%s** | %q | %s |\n", c.Emoji, c.Name, c.Catchphrase, mark)
	}
	return b.String()
}

// ScriptSheet renders a script as a numbered list. When running, the line at active is marked.
func ScriptSheet(script engine.Script, active int, running bool) string {
	var b strings.Builder
	b.WriteString("## SCRIPT\n\n")
	if len(script) == 0 {
		b.WriteString("_(no script yet)_\n")
		return b.String()
	}
	for i, line := range script {
		if running && i == active {
			fmt.Fprintf(&b, "%d. **▶ %s**\n", i+1, line)
			continue
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)
	}
	return b.String()
}

// HistorySheet lists completed generations, oldest first, with the time each finished.
func HistorySheet(entries []store.Entry) string {
	var b strings.Builder
	b.WriteString("## GENERATION HISTORY\n\n")
	if len(entries) == 0 {
		b.WriteString("_(nothing generated yet)_\n")
		return b.String()
	}
	for _, e := range entries {
		fmt.Fprintf(&b, "- ✓ %s · %s\n", e.Summary, e.At.Format("15:04:05"))
	}
	return b.String()
}

// HelpSheet describes the controls.
func HelpSheet(seedText string) string {
	return fmt.Sprintf(`# ABOUT

Seed: %s

Generate picks 3 to 5 characters from the cast and writes a short script, then
animates it while the progress bar fills. Play replays the last script spread
over the configured duration. Each finished generation lands in the history.

Intensity is shown for fun and changes nothing.
`, "`"+seedText+"`")
}
