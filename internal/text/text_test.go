package text

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DaanHessen/brainrot-tui/internal/engine"
	"github.com/DaanHessen/brainrot-tui/internal/store"
)

type failingRenderer struct{}

func (failingRenderer) Render(string) (string, error) { return "", errors.New("boom") }

func TestWithFallback(t *testing.T) {
	r := WithFallback(failingRenderer{}, NewPlainRenderer())
	got, err := r.Render("# hi")
	if err != nil || got != "# hi" {
		t.Fatalf("fallback render = %q, %v", got, err)
	}
	r = WithFallback(nil, NewPlainRenderer())
	if got, _ := r.Render("x"); got != "x" {
		t.Fatalf("nil primary render = %q", got)
	}
}

func TestGlamourRendererRenders(t *testing.T) {
	r, err := NewGlamourRenderer(60)
	if err != nil {
		t.Fatalf("NewGlamourRenderer: %v", err)
	}
	out, err := r.Render("# MEET THE CAST\n\nhello")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "hello") {
		t.Fatalf("rendered output lost text: %q", out)
	}
}

func TestCastSheetMarksSelected(t *testing.T) {
	cast := engine.Cast()
	md := CastSheet(cast, cast[:2])
	for _, c := range cast {
		if !strings.Contains(md, c.Name) {
			t.Fatalf("cast sheet missing %s", c.Name)
		}
	}
	if n := strings.Count(md, "✓"); n != 2 {
		t.Fatalf("selected marks = %d, want 2", n)
	}
}

func TestScriptSheetActiveLine(t *testing.T) {
	script := engine.Script{"a", "b", engine.ClosingLine}
	md := ScriptSheet(script, 1, true)
	if !strings.Contains(md, "2. **▶ b**") {
		t.Fatalf("active line not marked:\n%s", md)
	}
	if strings.Contains(ScriptSheet(script, 1, false), "▶") {
		t.Fatal("idle script sheet marks a line")
	}
	if !strings.Contains(ScriptSheet(nil, 0, false), "no script yet") {
		t.Fatal("empty script sheet missing placeholder")
	}
}

func TestHistorySheet(t *testing.T) {
	at := time.Date(2025, 5, 1, 9, 30, 5, 0, time.UTC)
	md := HistorySheet([]store.Entry{
		{Ordinal: 1, Summary: "Video 1: A vs B vs C", At: at},
		{Ordinal: 2, Summary: "Video 2: D vs E vs F", At: at.Add(time.Minute)},
	})
	if strings.Index(md, "Video 1") > strings.Index(md, "Video 2") {
		t.Fatal("history not oldest first")
	}
	if !strings.Contains(md, "Video 1: A vs B vs C · 09:30:05") || !strings.Contains(md, "09:31:05") {
		t.Fatalf("history missing finish times:\n%s", md)
	}
	if !strings.Contains(HistorySheet(nil), "nothing generated yet") {
		t.Fatal("empty history placeholder missing")
	}
}
