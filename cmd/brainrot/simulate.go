package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/pkg/errors"

	"github.com/DaanHessen/brainrot-tui/internal/engine"
	"github.com/DaanHessen/brainrot-tui/internal/store"
	"github.com/DaanHessen/brainrot-tui/internal/util"
)

// simulate runs the sequencer headless on real timers, printing every scene.
// mode "replay" generates first and then replays the result.
func simulate(ctx context.Context, cfg util.Config, mode string, out io.Writer) error {
	return simulateWith(ctx, cfg, mode, out, engine.NewTimeTicker)
}

func simulateWith(ctx context.Context, cfg util.Config, mode string, out io.Writer, newTicker engine.TickerFunc) error {
	if mode != "generate" && mode != "replay" {
		return errors.Errorf("unknown simulate mode %q; use generate|replay", mode)
	}
	seed, err := engine.NewRunSeed(cfg.SeedText)
	if err != nil {
		return err
	}
	hist := store.NewHistory()
	seq := engine.NewSequencer(seed, hist)
	seq.SetDuration(cfg.Duration)
	seq.SetIntensity(cfg.Intensity)
	defer seq.Teardown()

	printFrame := func(step engine.Step, st engine.PlaybackState) {
		if !step.Advanced {
			return
		}
		fmt.Fprintf(out, "[%3d%%] #%02d %s  %s  (%s, %s, %s)\n",
			st.Progress, st.Scene+1, st.Emoji, st.Line, st.Sound, st.Background.Name, st.Effect)
	}

	run, _ := seq.Generate()
	log.Printf("run %s: generating %d lines at %s per tick", run.ID, len(seq.Script()), run.Interval)
	if err := engine.Drive(ctx, seq, run, newTicker, printFrame); err != nil {
		return errors.Wrap(err, "generate run")
	}

	if mode == "replay" {
		run, ok := seq.Play()
		if !ok {
			return errors.New("replay refused")
		}
		log.Printf("run %s: replaying %d lines at %s per tick", run.ID, len(seq.Script()), run.Interval)
		if err := engine.Drive(ctx, seq, run, newTicker, printFrame); err != nil {
			return errors.Wrap(err, "replay run")
		}
	}

	for _, s := range hist.Summaries() {
		fmt.Fprintln(out, "✓ "+s)
	}
	return nil
}
