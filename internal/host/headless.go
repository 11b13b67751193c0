package host

import (
	"context"
	"fmt"
	"time"

	"github.com/gogpu/gridview"
	"github.com/gogpu/gridview/internal/script"
)

// HeadlessConfig controls the no-window replay runner.
type HeadlessConfig struct {
	Hz int // ticks per second; 0 means 60
}

// RunHeadless replays steps into v, one event per tick followed by each
// step's hold ticks. It returns when the script is exhausted or ctx is done.
func RunHeadless(ctx context.Context, v *gridview.View, steps []script.Step, cfg HeadlessConfig) error {
	if cfg.Hz == 0 {
		cfg.Hz = 60
	}
	if cfg.Hz < 0 {
		return fmt.Errorf("host: invalid headless hz: %d", cfg.Hz)
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("host: invalid headless hz: %d", cfg.Hz)
	}

	t := time.NewTicker(d)
	defer t.Stop()

	log := gridview.Logger()
	var tick uint64
	for i := 0; i < len(steps); {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
		tick++

		s := &steps[i]
		g, err := v.HandleTouch(s.Event)
		if err != nil {
			return fmt.Errorf("host: replay step %d: %w", i, err)
		}
		log.Debug("replay step", "step", i, "tick", tick, "phase", s.Event.Phase.String(), "gesture", g.String())

		for range s.Hold {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.C:
			}
			tick++
		}
		i++
	}
	log.Info("replay finished", "steps", len(steps), "ticks", tick)
	return nil
}
