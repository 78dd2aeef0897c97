package calc

import (
	"context"
	"log/slog"
	"time"

	"github.com/chargecost/chargecost/pkg/calendar"
	"github.com/chargecost/chargecost/pkg/location"
	"github.com/chargecost/chargecost/pkg/log"
	"github.com/chargecost/chargecost/pkg/solar"
	"github.com/chargecost/chargecost/pkg/types"
	"github.com/levenlabs/go-lflag"
)

const (
	// DefaultPanelRatingKW is the rating of the assumed solar panel array.
	DefaultPanelRatingKW float64 = 50

	// DefaultPanelEfficiency is the assumed conversion efficiency.
	DefaultPanelEfficiency float64 = 0.2
)

// Calculator answers the total cost and total time of a charging session. It
// owns no mutable state across calculations, so one Calculator may serve
// concurrent sessions.
type Calculator struct {
	classifier *calendar.Classifier
	locations  location.Resolver
	solar      solar.Provider

	panelRatingKW   float64
	panelEfficiency float64

	// now is swappable for tests; it decides exact-date vs averaging mode.
	now func() time.Time
}

// New returns a Calculator with default panel parameters.
func New(classifier *calendar.Classifier, locations location.Resolver, solarData solar.Provider) *Calculator {
	return &Calculator{
		classifier:      classifier,
		locations:       locations,
		solar:           solarData,
		panelRatingKW:   DefaultPanelRatingKW,
		panelEfficiency: DefaultPanelEfficiency,
		now:             time.Now,
	}
}

// Configured sets up flags for the calculator and returns the instance.
func Configured(classifier *calendar.Classifier, locations location.Resolver, solarData solar.Provider) *Calculator {
	c := New(classifier, locations, solarData)

	rating := DefaultPanelRatingKW
	efficiency := DefaultPanelEfficiency
	lflag.JSON(&rating, "solar-panel-rating-kw", DefaultPanelRatingKW, "Rating in kW of the solar panel array offsetting charging cost")
	lflag.JSON(&efficiency, "solar-panel-efficiency", DefaultPanelEfficiency, "Conversion efficiency of the solar panel array")

	lflag.Do(func() {
		c.panelRatingKW = rating
		c.panelEfficiency = efficiency
	})

	return c
}

// TotalCost computes the cost of the session net of solar savings. When the
// savings meet or exceed the billed cost the result is flagged FullyOffset
// rather than reported as zero. Any provider or classification failure aborts
// the computation; there is no partial answer.
func (c *Calculator) TotalCost(ctx context.Context, session types.ChargingSession) (types.CostResult, error) {
	tariff := types.TariffForCharger(session.ChargerConfig)
	minutes := ChargingMinutes(session.InitialChargePct, session.FinalChargePct, session.BatteryCapacityKWH, tariff.PowerKW)
	required := int(minutes)

	jur, err := calendar.JurisdictionForPostcode(session.Postcode)
	if err != nil {
		return types.CostResult{}, err
	}

	memo := newProviderMemo()

	gross, err := c.simulateBilling(ctx, memo, session, tariff, jur, required)
	if err != nil {
		return types.CostResult{}, err
	}

	savings, err := c.solarSavings(ctx, memo, session, tariff, jur, required)
	if err != nil {
		return types.CostResult{}, err
	}

	log.Ctx(ctx).DebugContext(ctx, "session calculated",
		slog.Float64("grossDollars", gross),
		slog.Float64("savingsDollars", savings),
		slog.Float64("chargingMinutes", minutes),
		slog.String("jurisdiction", string(jur)))

	result := types.CostResult{
		GrossDollars:        gross,
		SolarSavingsDollars: savings,
	}
	if savings >= gross {
		result.FullyOffset = true
		return result, nil
	}
	result.NetDollars = gross - savings
	return result, nil
}

// TotalTime returns the formatted duration of the session.
func (c *Calculator) TotalTime(session types.ChargingSession) string {
	tariff := types.TariffForCharger(session.ChargerConfig)
	minutes := ChargingMinutes(session.InitialChargePct, session.FinalChargePct, session.BatteryCapacityKWH, tariff.PowerKW)
	return FormatDuration(minutes)
}

// providerMemo caches surcharge factors and solar profiles for the lifetime
// of a single calculation, since a multi-day or averaged simulation touches
// the same (date, jurisdiction) and (location, date) pairs repeatedly.
// Nothing is shared across calculations.
type providerMemo struct {
	surcharges map[string]float64
	days       map[string]types.SolarDay
}

func newProviderMemo() *providerMemo {
	return &providerMemo{
		surcharges: make(map[string]float64),
		days:       make(map[string]types.SolarDay),
	}
}

func (c *Calculator) surchargeFor(ctx context.Context, memo *providerMemo, date time.Time, jur types.Jurisdiction) (float64, error) {
	key := string(jur) + "|" + date.Format("20060102")
	if f, ok := memo.surcharges[key]; ok {
		return f, nil
	}
	f, err := c.classifier.SurchargeFactor(ctx, date, jur)
	if err != nil {
		return 0, err
	}
	memo.surcharges[key] = f
	return f, nil
}

func (c *Calculator) solarDayFor(ctx context.Context, memo *providerMemo, locationID string, date time.Time) (types.SolarDay, error) {
	key := locationID + "|" + date.Format("20060102")
	if d, ok := memo.days[key]; ok {
		return d, nil
	}
	d, err := c.solar.Day(ctx, locationID, date)
	if err != nil {
		return types.SolarDay{}, err
	}
	memo.days[key] = d
	return d, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
