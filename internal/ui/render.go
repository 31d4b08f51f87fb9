package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/brainrot-tui/internal/engine"
	"github.com/DaanHessen/brainrot-tui/internal/text"
)

const stageHeight = 9

// Layout rendering -----------------------------------------------------------
func (m model) renderStudio() string {
	w := m.width
	if w <= 0 {
		w = 100
	}
	stageWidth := 40
	if w < 90 {
		stageWidth = 30
	}
	sideWidth := max(w-stageWidth-6, 30)

	header := m.styles.title.Render("🇮🇹 Italian Brainrot Generator 🧠")
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.heading.Render("📺 Video Preview")+"  "+flag(),
		m.renderStage(stageWidth),
		m.renderProgress(stageWidth),
		"",
		m.renderButtons(),
	)
	right := lipgloss.NewStyle().Width(sideWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderSettings(),
		m.renderCastList(sideWidth),
		m.renderScript(),
	))
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func flag() string {
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("#009246")).Render("█")
	white := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Render("█")
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("#ce2b37")).Render("█")
	return green + white + red
}

func (m model) renderStage(width int) string {
	st := m.seq.State()
	stops := st.Background.Stops
	if len(stops) == 0 {
		stops = engine.DefaultBackground().Stops
	}
	box := lipgloss.NewStyle().
		Width(width).
		Height(stageHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(stops[len(stops)-1])).
		Background(lipgloss.Color(stops[0])).
		Foreground(lipgloss.Color("#ffffff"))

	var content string
	switch {
	case !st.Idle():
		content = lipgloss.JoinVertical(lipgloss.Center,
			st.Emoji,
			"",
			effectStyle(st.Effect, st.Scene).Render(st.Line),
			"",
			m.styles.sound.Render(st.Sound),
		)
	case m.seq.HasScript():
		content = "✅\n\nVideo Ready!\nPress p to watch"
	default:
		content = "🎬\n\nPress g to create brainrot!"
	}
	return box.Render(content)
}

// effectStyle approximates the page's CSS effects with terminal attributes.
func effectStyle(e engine.Effect, scene int) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch e {
	case engine.EffectShake:
		if scene%2 == 0 {
			return s.PaddingLeft(2)
		}
		return s.PaddingRight(2)
	case engine.EffectFlash:
		return s.Reverse(true)
	case engine.EffectWiggle:
		return s.Italic(true)
	case engine.EffectGlitch:
		return s.Underline(true).Blink(true)
	}
	return s
}

func (m model) renderProgress(width int) string {
	st := m.seq.State()
	if !st.Generating {
		return ""
	}
	return m.bar(st.Progress, width-5) + fmt.Sprintf(" %3d%%", st.Progress)
}

func (m model) renderButtons() string {
	st := m.seq.State()
	gen := "🎬 Generate"
	if st.Generating {
		gen = "⏳ Generating..."
	}
	play := "▶️ Play"
	if st.Playing {
		play = "▶️ Playing..."
	}
	genStyle, playStyle := m.styles.button, m.styles.button
	if !m.seq.CanGenerate() {
		genStyle = m.styles.buttonDisabled
	}
	if !m.seq.CanPlay() {
		playStyle = m.styles.buttonDisabled
	}
	return genStyle.Render(gen) + playStyle.Render(play)
}

func (m model) renderSettings() string {
	var b strings.Builder
	b.WriteString(m.styles.heading.Render("⚙️ Brainrot Settings") + "\n")
	fmt.Fprintf(&b, "🔥 Intensity %2d  %s\n", m.seq.Intensity(), m.bar(m.seq.Intensity()*10, 20))
	b.WriteString(m.styles.muted.Render("   Mild 🙂 ... MAXIMUM BRAINROT 🤯") + "\n")
	span := engine.MaxDuration - engine.MinDuration
	pct := (m.seq.Duration() - engine.MinDuration) * 100 / span
	fmt.Fprintf(&b, "⏱️ Duration %3ds %s", m.seq.Duration(), m.bar(pct, 20))
	return m.styles.panel.Render(b.String())
}

func (m model) renderCastList(width int) string {
	selected := map[string]bool{}
	for _, c := range m.seq.Characters() {
		selected[c.Name] = true
	}
	colWidth := max((width-6)/2, 20)
	var rows []string
	cast := engine.Cast()
	for i := 0; i < len(cast); i += 2 {
		cells := []string{castCell(cast[i], selected[cast[i].Name], colWidth)}
		if i+1 < len(cast) {
			cells = append(cells, castCell(cast[i+1], selected[cast[i+1].Name], colWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	body := m.styles.heading.Render("🎭 Brainrot Characters") + "\n" + strings.Join(rows, "\n")
	return m.styles.panel.Render(body)
}

func castCell(c engine.Character, selected bool, width int) string {
	accent := lipgloss.Color(c.Color)
	s := lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(accent).
		PaddingLeft(1)
	if selected {
		s = s.Bold(true).Foreground(accent)
	}
	return s.Render(c.Emoji + " " + c.Name)
}

func (m model) renderScript() string {
	script := m.seq.Script()
	if len(script) == 0 {
		return ""
	}
	st := m.seq.State()
	return m.styles.panel.Render(m.markdown(text.ScriptSheet(script, st.Scene, !st.Idle())))
}

func (m model) bar(v, width int) string {
	if width < 1 {
		width = 1
	}
	fill := int((float64(v)/100.0)*float64(width) + 0.5)
	if fill > width {
		fill = width
	}
	if fill < 0 {
		fill = 0
	}
	return m.styles.barFill.Render(strings.Repeat("█", fill)) + m.styles.barEmpty.Render(strings.Repeat("·", width-fill))
}
