package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
}

// RunHeadless runs the step function on a ticker without opening a window.
// Keyboard and pointer stay idle.
func RunHeadless(ctx context.Context, cfg Config, newApp func(HAL) func() error, hc HeadlessConfig) error {
	if hc.Hz <= 0 {
		hc.Hz = 60
	}

	h := newHost(cfg)
	step := newApp(h)

	d := time.Second / time.Duration(hc.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", hc.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	started := time.Now()
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if hc.Ticks > 0 && tick >= hc.Ticks {
				h.logger.WriteLineString(fmt.Sprintf("headless: %d ticks, %d frames presented in %v",
					tick, h.fb.frames(), time.Since(started).Round(time.Millisecond)))
				return nil
			}
		}
	}
}
