package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChargingMinutes(t *testing.T) {
	// 20% -> 80% of 60 kWh at 11 kW
	assert.InDelta(t, 196.36, ChargingMinutes(20, 80, 60, 11), 1e-9)
	// full charge at 2 kW takes a long time
	assert.InDelta(t, 1800, ChargingMinutes(0, 100, 60, 2), 1e-9)
	// zero delta would take no time at all (sessions forbid it, the math
	// still holds)
	assert.Equal(t, 0.0, ChargingMinutes(50, 50, 60, 11))
}

func TestChargingMinutesMonotonic(t *testing.T) {
	base := ChargingMinutes(20, 80, 60, 11)

	// increasing in the charge delta
	assert.Greater(t, ChargingMinutes(10, 90, 60, 11), base)
	// increasing in capacity
	assert.Greater(t, ChargingMinutes(20, 80, 80, 11), base)
	// decreasing in power
	assert.Less(t, ChargingMinutes(20, 80, 60, 22), base)
	// never negative for valid sessions
	assert.GreaterOrEqual(t, ChargingMinutes(0, 1, 1, 350), 0.0)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes float64
		want    string
	}{
		{0.5, "30 seconds."},
		{45.25, "45 minutes and 15 seconds."},
		{196.36, "3 hours and 16 minutes and 21 seconds."},
		{1441, "1 day, 0 hours and 1 minutes and 0 seconds."},
		{2900, "2 days, 0 hours and 20 minutes and 0 seconds."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.minutes), "minutes %v", tt.minutes)
	}
}
