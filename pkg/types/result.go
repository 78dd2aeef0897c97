package types

import "fmt"

// CostResult is the outcome of a cost calculation. FullyOffset is reported
// separately from the numeric amounts so a caller can distinguish "solar
// covered everything" from a legitimately zero bill.
type CostResult struct {
	// GrossDollars is the billed cost before solar savings.
	GrossDollars float64 `json:"grossDollars"`

	// SolarSavingsDollars is the amount displaced by solar generation.
	SolarSavingsDollars float64 `json:"solarSavingsDollars"`

	// NetDollars is gross minus savings, zero when FullyOffset.
	NetDollars float64 `json:"netDollars"`

	FullyOffset bool `json:"fullyOffset"`
}

// String renders the result the way the web form displays it: amounts over a
// dollar get 2 decimal places, amounts under get 4.
func (r CostResult) String() string {
	if r.FullyOffset {
		return "$0.00 as energy received from solar panels was greater than energy consumed!"
	}
	if r.NetDollars > 1 {
		return fmt.Sprintf("$%.2f", r.NetDollars)
	}
	return fmt.Sprintf("$%.4f", r.NetDollars)
}
