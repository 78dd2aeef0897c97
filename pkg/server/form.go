package server

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/chargecost/chargecost/pkg/types"
)

const (
	startDateFormat = "02/01/2006"
	startTimeFormat = "15:04"
)

// earliest and latest accepted start dates
var (
	minStartDate = time.Date(2008, time.July, 1, 0, 0, 0, 0, time.UTC)
	maxStartDate = time.Date(2999, time.December, 31, 0, 0, 0, 0, time.UTC)
)

type formError struct {
	field string
	msg   string
}

func (e formError) Error() string {
	return fmt.Sprintf("%s: %s", e.field, e.msg)
}

func errRequired(field string) error {
	return formError{field: field, msg: "this field is required"}
}

// parseSessionForm validates query parameters and assembles a charging
// session. The first failing field aborts parsing.
func parseSessionForm(q url.Values) (types.ChargingSession, error) {
	var session types.ChargingSession

	capacity, err := parseIntField(q, "batteryCapacity", "battery capacity")
	if err != nil {
		return session, err
	}
	if capacity <= 0 {
		return session, formError{field: "batteryCapacity", msg: "battery capacity must be greater than 0"}
	}
	session.BatteryCapacityKWH = float64(capacity)

	initial, err := parseIntField(q, "initialCharge", "initial charge")
	if err != nil {
		return session, err
	}
	if initial < 0 {
		return session, formError{field: "initialCharge", msg: "initial charge must be greater than or equal to 0"}
	}
	if initial >= 100 {
		return session, formError{field: "initialCharge", msg: "initial charge must be less than 100"}
	}
	session.InitialChargePct = initial

	final, err := parseIntField(q, "finalCharge", "final charge")
	if err != nil {
		return session, err
	}
	if final <= 0 {
		return session, formError{field: "finalCharge", msg: "final charge must be greater than 0"}
	}
	if final > 100 {
		return session, formError{field: "finalCharge", msg: "final charge cannot be more than 100"}
	}
	if final <= initial {
		return session, formError{field: "finalCharge", msg: "final charge must be greater than initial charge"}
	}
	session.FinalChargePct = final

	rawDate := q.Get("startDate")
	if rawDate == "" {
		return session, errRequired("startDate")
	}
	startDate, err := time.Parse(startDateFormat, rawDate)
	if err != nil {
		return session, formError{field: "startDate", msg: "data is missing or format is incorrect"}
	}
	if startDate.Before(minStartDate) {
		return session, formError{field: "startDate", msg: "start date must be a date after 30/06/2008"}
	}
	if startDate.After(maxStartDate) {
		return session, formError{field: "startDate", msg: "start date must be a date before 01/01/3000"}
	}
	session.StartDate = startDate

	rawTime := q.Get("startTime")
	if rawTime == "" {
		return session, errRequired("startTime")
	}
	startTime, err := time.Parse(startTimeFormat, rawTime)
	if err != nil {
		return session, formError{field: "startTime", msg: "data is missing or format is incorrect"}
	}
	session.StartMinute = startTime.Hour()*60 + startTime.Minute()

	charger, err := parseIntField(q, "chargerConfiguration", "charger configuration")
	if err != nil {
		return session, err
	}
	if charger < 1 || charger > 8 {
		return session, formError{field: "chargerConfiguration", msg: "charger configuration must be a number from 1-8"}
	}
	session.ChargerConfig = charger

	postcode, err := parseIntField(q, "postcode", "post code")
	if err != nil {
		return session, err
	}
	session.Postcode = postcode

	suburb := strings.TrimSpace(q.Get("suburb"))
	if suburb == "" {
		return session, errRequired("suburb")
	}
	if _, err := strconv.Atoi(suburb); err == nil {
		return session, formError{field: "suburb", msg: "suburb cannot be a number"}
	}
	session.Suburb = suburb

	return session, nil
}

func parseIntField(q url.Values, name, label string) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, errRequired(name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, formError{field: name, msg: label + " must be an integer"}
	}
	return v, nil
}
