package calc

import (
	"context"
	"time"

	"github.com/chargecost/chargecost/pkg/types"
)

// tariffRegime is the peak/off-peak pricing state for a simulated minute.
type tariffRegime int

const (
	regimePeak tariffRegime = iota
	regimeOffPeak
)

func regimeForMinute(minute int) tariffRegime {
	if types.IsPeakMinute(minute) {
		return regimePeak
	}
	return regimeOffPeak
}

// perMinutePrice derives the effective price from the base price for this
// regime. The effective price is always derived from the base, never from a
// previous regime's price, so crossing the peak boundary any number of times
// cannot compound the off-peak halving.
func (r tariffRegime) perMinutePrice(base float64) float64 {
	if r == regimeOffPeak {
		return base / 2
	}
	return base
}

// simulateBilling walks the session minute by minute and accumulates the
// tariff cost, applying the day's surcharge factor and halving the price
// outside the peak window. Any surcharge lookup failure, including after a
// day rollover, aborts the whole computation.
func (c *Calculator) simulateBilling(
	ctx context.Context,
	memo *providerMemo,
	session types.ChargingSession,
	tariff types.TariffProfile,
	jur types.Jurisdiction,
	requiredMinutes int,
) (float64, error) {
	// The base price spreads the per-kWh tariff across every simulated
	// minute, converted from cents to dollars.
	base := tariff.PriceCentsPerKWH / float64(requiredMinutes+1) / 100

	surcharge, err := c.surchargeFor(ctx, memo, session.StartDate, jur)
	if err != nil {
		return 0, err
	}

	cursor := &dayCursor{date: session.StartDate, minute: session.StartMinute}
	cursor.refresh = func(ctx context.Context, d time.Time) error {
		f, err := c.surchargeFor(ctx, memo, d, jur)
		if err != nil {
			return err
		}
		surcharge = f
		return nil
	}

	energy := session.EnergyKWH()
	var total float64
	for count := 0; count <= requiredMinutes; count++ {
		if _, err := cursor.rollIfNeeded(ctx); err != nil {
			return 0, err
		}
		price := regimeForMinute(cursor.minute).perMinutePrice(base)
		total += energy * price * surcharge
		cursor.advance()
	}
	return round2(total), nil
}
