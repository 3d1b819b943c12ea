package session

import (
	"context"
	"time"
)

// Command mutates the controller from inside Run's goroutine.
type Command func(c *Controller) error

// Run drives c with a ticker for hosts that have no scheduler of their
// own. Commands are executed in order; a command error ends the loop.
// The ticker is re-armed whenever the generation changes, so a stopped
// or replaced round never receives another tick. draw, if non-nil, is
// called after every command and tick.
func Run(ctx context.Context, c *Controller, commands <-chan Command, draw func(*Controller)) error {
	var (
		ticker *time.Ticker
		tickC  <-chan time.Time
		armed  uint64
	)
	disarm := func() {
		if ticker != nil {
			ticker.Stop()
		}
		ticker, tickC = nil, nil
	}
	rearm := func() {
		t, ok := c.Ticket()
		if !ok {
			disarm()
			return
		}
		if ticker != nil && armed == t.Generation {
			return
		}
		disarm()
		ticker = time.NewTicker(t.Interval)
		tickC = ticker.C
		armed = t.Generation
	}
	defer disarm()

	rearm()
	for {
		select {
		case <-ctx.Done():
			c.Stop()
			return ctx.Err()
		case cmd, ok := <-commands:
			if !ok {
				c.Stop()
				return nil
			}
			if err := cmd(c); err != nil {
				c.Stop()
				return err
			}
		case <-tickC:
			c.Tick(armed)
		}
		rearm()
		if draw != nil {
			draw(c)
		}
	}
}
