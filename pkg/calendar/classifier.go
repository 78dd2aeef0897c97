package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chargecost/chargecost/pkg/holiday"
	"github.com/chargecost/chargecost/pkg/log"
	"github.com/chargecost/chargecost/pkg/types"
)

const (
	// SurchargeFactorNone is the multiplier for an ordinary weekday in term.
	SurchargeFactorNone = 1.0
	// SurchargeFactorHoliday applies on weekends, weekdays outside school
	// term and public holidays.
	SurchargeFactorHoliday = 1.1
)

// Classifier decides the surcharge factor for a date in a jurisdiction. The
// weekend and school-term checks are local; only a weekday inside term needs
// the remote holiday registry.
type Classifier struct {
	registry holiday.Registry
	terms    map[types.Jurisdiction][]termRange
}

// NewClassifier builds a Classifier with the embedded term date dataset.
func NewClassifier(registry holiday.Registry) (*Classifier, error) {
	terms, err := loadTermDates()
	if err != nil {
		return nil, err
	}
	return &Classifier{
		registry: registry,
		terms:    terms,
	}, nil
}

// InSchoolTerm reports whether the date falls inside one of the
// jurisdiction's school term windows. Comparison is by day and month only.
func (c *Classifier) InSchoolTerm(date time.Time, jur types.Jurisdiction) bool {
	for _, r := range c.terms[jur] {
		if r.contains(date) {
			return true
		}
	}
	return false
}

// SurchargeFactor returns the tariff multiplier for the date. Weekends and
// weekdays outside school term short-circuit to the surcharge without a
// remote call; a weekday inside term is only surcharged when the holiday
// registry lists the jurisdiction for that date.
func (c *Classifier) SurchargeFactor(ctx context.Context, date time.Time, jur types.Jurisdiction) (float64, error) {
	wd := date.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return SurchargeFactorHoliday, nil
	}
	if !c.InSchoolTerm(date, jur) {
		return SurchargeFactorHoliday, nil
	}

	holidays, err := c.registry.HolidaysOn(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("failed to look up holidays for %s: %w", date.Format("2006-01-02"), err)
	}
	if holidays.Contains(jur) {
		log.Ctx(ctx).DebugContext(ctx, "date is a public holiday",
			slog.String("date", date.Format("2006-01-02")),
			slog.String("jurisdiction", string(jur)))
		return SurchargeFactorHoliday, nil
	}
	return SurchargeFactorNone, nil
}
