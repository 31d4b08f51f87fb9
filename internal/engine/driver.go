package engine

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrSuperseded is returned by Drive when the run stopped being current before it finished.
var ErrSuperseded = errors.New("run superseded")

// Ticker is a periodic tick source.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker { return timeTicker{t: time.NewTicker(d)} }

// Drive ticks run on seq until it ends. The ticker is stopped on every exit path; when ctx is
// cancelled first the run is released as well. observe, if set, sees every non-stale step.
func Drive(ctx context.Context, seq *Sequencer, run Run, newTicker TickerFunc, observe func(Step, PlaybackState)) error {
	t := newTicker(run.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			seq.Release(run.ID)
			return ctx.Err()
		case <-t.C():
			step := seq.Tick(run.ID)
			if step.Stale {
				return ErrSuperseded
			}
			if observe != nil {
				observe(step, seq.State())
			}
			if step.Done {
				return nil
			}
		}
	}
}
