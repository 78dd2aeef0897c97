package types

// TariffProfile is the fixed power and price pair for one charger
// configuration.
type TariffProfile struct {
	PowerKW          float64 `json:"powerKW"`
	PriceCentsPerKWH float64 `json:"priceCentsPerKWH"`
}

// TariffForCharger maps a charger configuration to its tariff profile. Any
// configuration outside the known tiers gets the ultra-fast profile, so the
// lookup never fails.
func TariffForCharger(config int) TariffProfile {
	switch config {
	case 1:
		return TariffProfile{PowerKW: 2, PriceCentsPerKWH: 5}
	case 2:
		return TariffProfile{PowerKW: 3.6, PriceCentsPerKWH: 7.5}
	case 3:
		return TariffProfile{PowerKW: 7.2, PriceCentsPerKWH: 10}
	case 4:
		return TariffProfile{PowerKW: 11, PriceCentsPerKWH: 12.5}
	case 5:
		return TariffProfile{PowerKW: 22, PriceCentsPerKWH: 15}
	case 6:
		return TariffProfile{PowerKW: 36, PriceCentsPerKWH: 20}
	case 7:
		return TariffProfile{PowerKW: 90, PriceCentsPerKWH: 30}
	default:
		return TariffProfile{PowerKW: 350, PriceCentsPerKWH: 50}
	}
}

const (
	// PeakStartMinute and PeakEndMinute bound the peak tariff window,
	// 6:00am inclusive to 6:00pm exclusive.
	PeakStartMinute = 360
	PeakEndMinute   = 1080
)

// IsPeakMinute reports whether the given minute of the day falls inside the
// peak tariff window. Outside the window the tariff is halved.
func IsPeakMinute(minute int) bool {
	return minute >= PeakStartMinute && minute < PeakEndMinute
}
