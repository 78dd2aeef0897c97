package calc

import (
	"context"
	"time"
)

// dayCursor is the minute clock for one simulation run. The simulators call
// rollIfNeeded before pricing each minute and advance afterwards; when the
// clock reaches minute 1440 the cursor moves to the next calendar date,
// resets to minute 1 and re-derives day-scoped state through refresh.
type dayCursor struct {
	date   time.Time
	minute int

	// refresh re-derives per-day state (surcharge factor, solar profile) for
	// the new date after a rollover. A refresh error aborts the simulation.
	refresh func(ctx context.Context, date time.Time) error
}

func (c *dayCursor) rollIfNeeded(ctx context.Context) (bool, error) {
	if c.minute < minutesPerDay {
		return false, nil
	}
	c.date = c.date.AddDate(0, 0, 1)
	c.minute = 1
	if c.refresh != nil {
		if err := c.refresh(ctx, c.date); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (c *dayCursor) advance() {
	c.minute++
}
