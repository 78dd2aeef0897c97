package calc

import (
	"context"
	"time"

	"github.com/chargecost/chargecost/pkg/types"
)

// solarSavings computes the savings from on-site solar generation across the
// charging window. A start date that has already occurred is simulated
// directly against its weather history; a future date is approximated by
// averaging the same calendar day across the three most recent years it has
// already passed, since forecasts are not treated as reliable inputs.
func (c *Calculator) solarSavings(
	ctx context.Context,
	memo *providerMemo,
	session types.ChargingSession,
	tariff types.TariffProfile,
	jur types.Jurisdiction,
	requiredMinutes int,
) (float64, error) {
	locationID, err := c.locations.Resolve(ctx, session.Postcode, session.Suburb)
	if err != nil {
		return 0, err
	}

	today := dateOnly(c.now())
	start := dateOnly(session.StartDate)

	var dates []time.Time
	if !start.After(today) {
		dates = []time.Time{start}
	} else {
		ref := referenceDate(start, today)
		dates = []time.Time{ref, ref.AddDate(-1, 0, 0), ref.AddDate(-2, 0, 0)}
	}

	var total float64
	for _, d := range dates {
		s, err := c.simulateSolarSavings(ctx, memo, session, tariff, jur, locationID, d, requiredMinutes)
		if err != nil {
			return 0, err
		}
		total += s
	}
	return total / float64(len(dates)), nil
}

// simulateSolarSavings runs the exact-date savings simulation for one start
// date. Minutes between sunrise and sunset count as daylight; an accounting
// window closes at each hour boundary, at sunset, or at the session's final
// minute, whichever comes first while still in daylight. Each window nets the
// energy the charger drew against the cloud-adjusted solar generation at the
// window's tariff. Negative window contributions are allowed.
func (c *Calculator) simulateSolarSavings(
	ctx context.Context,
	memo *providerMemo,
	session types.ChargingSession,
	tariff types.TariffProfile,
	jur types.Jurisdiction,
	locationID string,
	startDate time.Time,
	requiredMinutes int,
) (float64, error) {
	surcharge, err := c.surchargeFor(ctx, memo, startDate, jur)
	if err != nil {
		return 0, err
	}
	day, err := c.solarDayFor(ctx, memo, locationID, startDate)
	if err != nil {
		return 0, err
	}

	// windowAnchor is the minute the hour-of-day bookkeeping counts from: the
	// session start on the first day, sunrise on each following day.
	windowAnchor := session.StartMinute

	cursor := &dayCursor{date: startDate, minute: session.StartMinute}
	cursor.refresh = func(ctx context.Context, d time.Time) error {
		f, err := c.surchargeFor(ctx, memo, d, jur)
		if err != nil {
			return err
		}
		surcharge = f
		nd, err := c.solarDayFor(ctx, memo, locationID, d)
		if err != nil {
			return err
		}
		day = nd
		windowAnchor = day.SunriseMinute
		return nil
	}

	var (
		savings         float64
		daylightMinutes int
		sunlightHours   int
	)
	for count := 0; count < requiredMinutes; count++ {
		if _, err := cursor.rollIfNeeded(ctx); err != nil {
			return 0, err
		}

		m := cursor.minute
		inDaylight := day.InDaylight(m)
		if inDaylight {
			daylightMinutes++
		}

		lastMinute := count == requiredMinutes-1
		if inDaylight && ((m+1)%60 == 0 || m == day.SunsetMinute || lastMinute) {
			sunlightHours++
			hourOfDay := (sunlightHours*60 + windowAnchor) / 60
			cloud := day.CloudCoverPct(hourOfDay)

			windowHours := float64(daylightMinutes) / 60
			daylightHours := float64(day.DaylightMinutes()) / 60
			generated := day.SunHours * windowHours / daylightHours *
				(1 - cloud/100) * c.panelRatingKW * c.panelEfficiency

			price := regimeForMinute(m).perMinutePrice(tariff.PriceCentsPerKWH / 100)
			savings += (tariff.PowerKW*windowHours - generated) * price * surcharge
			daylightMinutes = 0
		}
		cursor.advance()
	}
	return savings, nil
}

// referenceDate maps a future date to the most recent already-passed date
// sharing its day and month. Feb 29 inputs substitute Feb 28 so the mapping
// exists in every year.
func referenceDate(date, today time.Time) time.Time {
	day := date.Day()
	month := date.Month()
	if month == time.February && day == 29 {
		day = 28
	}
	for year := today.Year(); ; year-- {
		ref := time.Date(year, month, day, 0, 0, 0, 0, date.Location())
		if ref.Before(today) {
			return ref
		}
	}
}
