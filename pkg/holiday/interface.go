package holiday

import (
	"context"
	"time"

	"github.com/chargecost/chargecost/pkg/types"
)

// Registry answers which jurisdictions observe a public holiday on a given
// date. The calendar classifier only consults it when a date cannot be
// classified locally.
type Registry interface {
	// HolidaysOn returns the set of jurisdictions with a gazetted public
	// holiday on the given date. The set is empty, not nil-erroring, when no
	// jurisdiction has a holiday.
	HolidaysOn(ctx context.Context, date time.Time) (types.JurisdictionSet, error)
}
