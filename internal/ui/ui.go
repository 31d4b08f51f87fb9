package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/DaanHessen/brainrot-tui/internal/engine"
	"github.com/DaanHessen/brainrot-tui/internal/store"
	"github.com/DaanHessen/brainrot-tui/internal/text"
	"github.com/DaanHessen/brainrot-tui/internal/util"
)

const (
	viewStudio  = "studio"
	viewCast    = "cast"
	viewHistory = "history"
	viewHelp    = "help"
)

// runTickMsg is one tick of the live run's timer. It is addressed to the run that scheduled it.
type runTickMsg struct {
	runID uuid.UUID
	at    time.Time
}

func tickCmd(run engine.Run) tea.Cmd {
	return tea.Tick(run.Interval, func(t time.Time) tea.Msg {
		return runTickMsg{runID: run.ID, at: t}
	})
}

type model struct {
	seq      *engine.Sequencer
	history  *store.History
	seed     engine.RunSeed
	renderer text.Renderer
	version  string

	keys        keyMap
	help        help.Model
	historyView viewport.Model

	theme  string
	styles styles
	view   string
	width  int
	height int
}

func newModel(cfg util.Config, version string) (model, error) {
	seed, err := engine.NewRunSeed(cfg.SeedText)
	if err != nil {
		return model{}, err
	}
	hist := store.NewHistory()
	seq := engine.NewSequencer(seed, hist)
	seq.SetDuration(cfg.Duration)
	seq.SetIntensity(cfg.Intensity)

	gr, err := text.NewGlamourRenderer(80)
	if err != nil {
		log.Printf("markdown renderer unavailable, using plain text: %v", err)
	}
	theme := cfg.Theme
	if _, ok := palettes[theme]; !ok {
		theme = defaultTheme
	}
	m := model{
		seq:         seq,
		history:     hist,
		seed:        seed,
		renderer:    text.WithFallback(gr, text.NewPlainRenderer()),
		version:     version,
		keys:        newKeyMap(),
		help:        help.New(),
		historyView: viewport.New(80, 16),
		theme:       theme,
		styles:      newStyles(paletteFor(theme)),
		view:        viewStudio,
	}
	m.syncKeys()
	m.refreshHistory()
	return m, nil
}

// tea.Model implementation ---------------------------------------------------
func (m model) Init() tea.Cmd { return tea.SetWindowTitle("Italian Brainrot Generator") }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.historyView.Width = max(msg.Width-4, 20)
		m.historyView.Height = max(msg.Height-6, 5)
		m.refreshHistory()
		return m, nil
	case runTickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.seq.Teardown()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Generate):
		return m.startGenerate()
	case key.Matches(msg, m.keys.Play):
		return m.startPlay()
	case key.Matches(msg, m.keys.DurationDown):
		m.seq.SetDuration(m.seq.Duration() - 1)
	case key.Matches(msg, m.keys.DurationUp):
		m.seq.SetDuration(m.seq.Duration() + 1)
	case key.Matches(msg, m.keys.IntensityDown):
		m.seq.SetIntensity(m.seq.Intensity() - 1)
	case key.Matches(msg, m.keys.IntensityUp):
		m.seq.SetIntensity(m.seq.Intensity() + 1)
	case key.Matches(msg, m.keys.Theme):
		m.theme = nextThemeName(m.theme, 1)
		m.styles = newStyles(paletteFor(m.theme))
	case key.Matches(msg, m.keys.Tab):
		m.cycleViews()
	case key.Matches(msg, m.keys.Help):
		if m.view == viewHelp {
			m.view = viewStudio
		} else {
			m.view = viewHelp
		}
	case key.Matches(msg, m.keys.Back):
		m.view = viewStudio
	default:
		if m.view == viewHistory {
			var cmd tea.Cmd
			m.historyView, cmd = m.historyView.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m model) startGenerate() (tea.Model, tea.Cmd) {
	run, ok := m.seq.Generate()
	if !ok {
		return m, nil
	}
	log.Printf("run %s: generate #%d started, %d characters, tick %s", run.ID, run.Ordinal, len(m.seq.Characters()), run.Interval)
	m.syncKeys()
	return m, tickCmd(run)
}

func (m model) startPlay() (tea.Model, tea.Cmd) {
	run, ok := m.seq.Play()
	if !ok {
		return m, nil
	}
	log.Printf("run %s: replay #%d started, %d scenes, tick %s", run.ID, run.Ordinal, len(m.seq.Script()), run.Interval)
	m.syncKeys()
	return m, tickCmd(run)
}

// handleTick feeds a tick to the sequencer and schedules the next one only while the same run is live.
func (m model) handleTick(msg runTickMsg) (tea.Model, tea.Cmd) {
	step := m.seq.Tick(msg.runID)
	if step.Stale {
		return m, nil
	}
	if step.Done {
		log.Printf("run %s: finished", msg.runID)
		m.syncKeys()
		m.refreshHistory()
		return m, nil
	}
	run, ok := m.seq.Current()
	if !ok {
		return m, nil
	}
	return m, tickCmd(run)
}

// syncKeys disables the actions the sequencer would refuse, which also hides them from help.
func (m *model) syncKeys() {
	m.keys.Generate.SetEnabled(m.seq.CanGenerate())
	m.keys.Play.SetEnabled(m.seq.CanPlay())
}

func (m *model) cycleViews() {
	order := []string{viewStudio, viewCast, viewHistory}
	cur := 0
	for i, v := range order {
		if v == m.view {
			cur = i
			break
		}
	}
	m.view = order[(cur+1)%len(order)]
	if m.view == viewHistory {
		m.refreshHistory()
	}
}

func (m *model) refreshHistory() {
	m.historyView.SetContent(m.markdown(text.HistorySheet(m.history.Entries())))
}

func (m model) markdown(md string) string {
	out, err := m.renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

func (m model) View() string {
	var body string
	switch m.view {
	case viewCast:
		body = m.markdown(text.CastSheet(engine.Cast(), m.seq.Characters()))
	case viewHistory:
		body = m.styles.title.Render("📜 Generation History") + "\n" + m.historyView.View()
	case viewHelp:
		body = m.markdown(text.HelpSheet(m.seed.Text)) + "\n" + m.help.FullHelpView(m.keys.FullHelp())
	default:
		body = m.renderStudio()
	}
	return body + "\n" + m.help.View(m.keys)
}
