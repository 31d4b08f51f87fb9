package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DaanHessen/brainrot-tui/internal/engine"
	"github.com/DaanHessen/brainrot-tui/internal/util"
)

type instantTicker struct{ ch chan time.Time }

func (i instantTicker) C() <-chan time.Time { return i.ch }
func (i instantTicker) Stop()               {}

func newInstantTicker(time.Duration) engine.Ticker {
	ch := make(chan time.Time, 256)
	for i := 0; i < cap(ch); i++ {
		ch <- time.Time{}
	}
	return instantTicker{ch: ch}
}

func TestSimulateReplay(t *testing.T) {
	var out bytes.Buffer
	cfg := util.Config{SeedText: "simulate", Duration: 15, Intensity: 5}
	if err := simulateWith(context.Background(), cfg, "replay", &out, newInstantTicker); err != nil {
		t.Fatalf("simulate: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "✓ Video 1: ") {
		t.Fatalf("missing history line:\n%s", text)
	}
	if strings.Count(text, "✓ Video") != 1 {
		t.Fatal("replay added a history line")
	}
	if !strings.Contains(text, engine.ClosingLine) {
		t.Fatal("replay never reached the closing line")
	}
}

func TestSimulateRejectsUnknownMode(t *testing.T) {
	cfg := util.Config{SeedText: "simulate", Duration: 15, Intensity: 5}
	if err := simulateWith(context.Background(), cfg, "export", &bytes.Buffer{}, newInstantTicker); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
