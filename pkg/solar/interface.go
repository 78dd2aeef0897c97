package solar

import (
	"context"
	"time"

	"github.com/chargecost/chargecost/pkg/types"
)

// Provider returns the solar profile for one location and date. The savings
// simulator fetches a fresh profile for every calendar date the simulation
// touches.
type Provider interface {
	// Day returns the solar profile for the given date, or
	// types.ErrUpstreamUnavailable when the data cannot be retrieved.
	Day(ctx context.Context, locationID string, date time.Time) (types.SolarDay, error)
}
