package types

import "time"

// ChargingSession describes one requested charging calculation. Instances are
// built from already-validated input and are immutable for the lifetime of a
// single calculation.
type ChargingSession struct {
	// InitialChargePct is the battery's state of charge before charging, 0-99.
	InitialChargePct int `json:"initialChargePct"`

	// FinalChargePct is the requested state of charge, 1-100 and always
	// greater than InitialChargePct.
	FinalChargePct int `json:"finalChargePct"`

	// BatteryCapacityKWH is the usable capacity of the vehicle battery.
	BatteryCapacityKWH float64 `json:"batteryCapacityKWH"`

	// ChargerConfig selects a row of the tariff table, normally 1-8.
	ChargerConfig int `json:"chargerConfig"`

	// StartMinute is the minute of the day charging begins, 0-1439.
	StartMinute int `json:"startMinute"`

	// StartDate is the calendar date charging begins, at midnight UTC.
	StartDate time.Time `json:"startDate"`

	Postcode int    `json:"postcode"`
	Suburb   string `json:"suburb"`
}

// ChargeFraction returns the fraction of the battery charged during the
// session, e.g. 20% -> 80% is 0.6.
func (s ChargingSession) ChargeFraction() float64 {
	return float64(s.FinalChargePct-s.InitialChargePct) / 100
}

// EnergyKWH returns the total energy delivered to the battery.
func (s ChargingSession) EnergyKWH() float64 {
	return s.ChargeFraction() * s.BatteryCapacityKWH
}
