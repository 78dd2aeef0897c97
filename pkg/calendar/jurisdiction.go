package calendar

import (
	"fmt"

	"github.com/chargecost/chargecost/pkg/types"
)

// JurisdictionForPostcode maps an Australian postcode to its state or
// territory. The ranges are disjoint; anything outside them is
// types.ErrInvalidPostcode.
func JurisdictionForPostcode(postcode int) (types.Jurisdiction, error) {
	switch {
	case postcode >= 2000 && postcode <= 2599,
		postcode >= 2619 && postcode <= 2899,
		postcode >= 2921 && postcode <= 2999:
		return types.NSW, nil
	case postcode >= 2600 && postcode <= 2618,
		postcode >= 2900 && postcode <= 2920:
		return types.ACT, nil
	case postcode >= 3000 && postcode <= 3999:
		return types.VIC, nil
	case postcode >= 4000 && postcode <= 4999:
		return types.QLD, nil
	case postcode >= 5000 && postcode <= 5799:
		return types.SA, nil
	case postcode >= 6000 && postcode <= 6797:
		return types.WA, nil
	case postcode >= 7000 && postcode <= 7799:
		return types.TAS, nil
	case postcode >= 800 && postcode <= 899:
		return types.NT, nil
	default:
		return "", fmt.Errorf("%w: %d", types.ErrInvalidPostcode, postcode)
	}
}
