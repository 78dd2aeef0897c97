package calc

import (
	"fmt"
	"math"
)

const minutesPerDay = 1440

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ChargingMinutes returns the minutes needed to charge from initialPct to
// finalPct at the given power, rounded to 2 decimal places. The session
// invariant finalPct > initialPct keeps this non-negative.
func ChargingMinutes(initialPct, finalPct int, capacityKWH, powerKW float64) float64 {
	hours := float64(finalPct-initialPct) / 100 * capacityKWH / powerKW
	return round2(hours * 60)
}

// FormatDuration renders a minute count as a human-readable duration.
// Zero-valued leading units are omitted and a single day is singular.
func FormatDuration(minutes float64) string {
	seconds := int((minutes - math.Trunc(minutes)) * 60)
	total := int(minutes)
	days := total / minutesPerDay
	hours := (total % minutesPerDay) / 60
	mins := total - days*minutesPerDay - hours*60

	switch {
	case days == 0 && hours == 0 && mins == 0:
		return fmt.Sprintf("%d seconds.", seconds)
	case days == 0 && hours == 0:
		return fmt.Sprintf("%d minutes and %d seconds.", mins, seconds)
	case days == 0:
		return fmt.Sprintf("%d hours and %d minutes and %d seconds.", hours, mins, seconds)
	case days == 1:
		return fmt.Sprintf("1 day, %d hours and %d minutes and %d seconds.", hours, mins, seconds)
	default:
		return fmt.Sprintf("%d days, %d hours and %d minutes and %d seconds.", days, hours, mins, seconds)
	}
}
