package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCostResultString(t *testing.T) {
	assert.Equal(t, "$4.50", CostResult{NetDollars: 4.5}.String())
	assert.Equal(t, "$0.1235", CostResult{NetDollars: 0.12345}.String())
	// exactly one dollar still gets the higher precision
	assert.Equal(t, "$1.0000", CostResult{NetDollars: 1}.String())

	offset := CostResult{GrossDollars: 2, SolarSavingsDollars: 3, FullyOffset: true}
	assert.Equal(t, "$0.00 as energy received from solar panels was greater than energy consumed!", offset.String())
	// a fully offset result must not look like a numeric zero
	assert.NotEqual(t, "$0.00", offset.String())
}

func TestSolarDayCloudCover(t *testing.T) {
	var d SolarDay
	assert.Equal(t, 0.0, d.CloudCoverPct(10))

	d.HourlyCloudCoverPct = make([]float64, 24)
	d.HourlyCloudCoverPct[7] = 40
	d.HourlyCloudCoverPct[23] = 90
	assert.Equal(t, 40.0, d.CloudCoverPct(7))
	assert.Equal(t, 90.0, d.CloudCoverPct(23))
	// out of range clamps rather than panicking
	assert.Equal(t, 90.0, d.CloudCoverPct(24))
	assert.Equal(t, 0.0, d.CloudCoverPct(-1))
}
