package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeTicker struct {
	ch       chan time.Time
	interval time.Duration
	stopped  bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               { f.stopped = true }

// primed returns a TickerFunc whose ticker already holds n ticks.
func primed(n int) (*fakeTicker, TickerFunc) {
	ft := &fakeTicker{ch: make(chan time.Time, n)}
	for i := 0; i < n; i++ {
		ft.ch <- time.Time{}
	}
	return ft, func(d time.Duration) Ticker {
		ft.interval = d
		return ft
	}
}

func TestDriveGenerateToCompletion(t *testing.T) {
	s, h := newTestSequencer(t, "drive-generate")
	run, _ := s.Generate()
	ft, newTicker := primed(100)
	steps := 0
	err := Drive(context.Background(), s, run, newTicker, func(Step, PlaybackState) { steps++ })
	if err != nil {
		t.Fatalf("Drive: %v", err)
	}
	if !ft.stopped {
		t.Fatal("ticker not stopped")
	}
	if ft.interval != run.Interval {
		t.Fatalf("ticker interval = %s, want %s", ft.interval, run.Interval)
	}
	if steps != 100/ProgressStep {
		t.Fatalf("observed %d steps", steps)
	}
	if h.Len() != 1 || s.Busy() {
		t.Fatalf("history=%d busy=%v", h.Len(), s.Busy())
	}
}

func TestDriveReplay(t *testing.T) {
	s, _ := newTestSequencer(t, "drive-replay")
	gen, _ := s.Generate()
	_, newTicker := primed(100)
	if err := Drive(context.Background(), s, gen, newTicker, nil); err != nil {
		t.Fatalf("Drive generate: %v", err)
	}
	run, _ := s.Play()
	_, newTicker = primed(len(s.Script()) + 1)
	var lines []string
	err := Drive(context.Background(), s, run, newTicker, func(step Step, st PlaybackState) {
		if step.Advanced {
			lines = append(lines, st.Line)
		}
	})
	if err != nil {
		t.Fatalf("Drive replay: %v", err)
	}
	if len(lines) != len(s.Script()) {
		t.Fatalf("replayed %d lines, want %d", len(lines), len(s.Script()))
	}
}

func TestDriveCancelReleasesRun(t *testing.T) {
	s, _ := newTestSequencer(t, "drive-cancel")
	run, _ := s.Generate()
	ft, newTicker := primed(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Drive(ctx, s, run, newTicker, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if !ft.stopped {
		t.Fatal("ticker not stopped on cancel")
	}
	if s.Busy() {
		t.Fatal("run still live after cancel")
	}
}

func TestDriveSuperseded(t *testing.T) {
	s, _ := newTestSequencer(t, "drive-superseded")
	run, _ := s.Generate()
	s.Teardown()
	ft, newTicker := primed(1)
	if err := Drive(context.Background(), s, run, newTicker, nil); !errors.Is(err, ErrSuperseded) {
		t.Fatalf("err = %v, want ErrSuperseded", err)
	}
	if !ft.stopped {
		t.Fatal("ticker not stopped when superseded")
	}
}
