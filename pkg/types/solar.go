package types

import "time"

// SolarDay holds the solar and weather profile for one calendar date at one
// location, as returned by the weather provider.
type SolarDay struct {
	Date time.Time `json:"date"`

	// SunriseMinute and SunsetMinute are minutes of the day.
	SunriseMinute int `json:"sunriseMinute"`
	SunsetMinute  int `json:"sunsetMinute"`

	// SunHours is the provider's measured solar insolation for the date.
	SunHours float64 `json:"sunHours"`

	// HourlyCloudCoverPct has one entry per hour of the day when the provider
	// returned hourly weather history, nil otherwise. A nil slice means no
	// cloud adjustment is applied.
	HourlyCloudCoverPct []float64 `json:"hourlyCloudCoverPct,omitempty"`
}

// DaylightMinutes returns the number of minutes between sunrise and sunset.
func (d SolarDay) DaylightMinutes() int {
	return d.SunsetMinute - d.SunriseMinute
}

// InDaylight reports whether the given minute of the day falls between
// sunrise and sunset inclusive.
func (d SolarDay) InDaylight(minute int) bool {
	return minute >= d.SunriseMinute && minute <= d.SunsetMinute
}

// CloudCoverPct returns the cloud cover percentage for the given hour of the
// day, or 0 when no hourly history is available. Hours past the end of the
// day clamp to the final hour.
func (d SolarDay) CloudCoverPct(hour int) float64 {
	if len(d.HourlyCloudCoverPct) == 0 {
		return 0
	}
	if hour < 0 {
		hour = 0
	}
	if hour >= len(d.HourlyCloudCoverPct) {
		hour = len(d.HourlyCloudCoverPct) - 1
	}
	return d.HourlyCloudCoverPct[hour]
}
