package calendar

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chargecost/chargecost/pkg/types"
	"gopkg.in/yaml.v3"
)

//go:embed termdates.yaml
var termDatesYAML []byte

// termRange is one school term window, compared by day and month only so the
// reference-year dates apply to every year.
type termRange struct {
	startMonth time.Month
	startDay   int
	endMonth   time.Month
	endDay     int
}

func (r termRange) contains(date time.Time) bool {
	d := int(date.Month())*100 + date.Day()
	start := int(r.startMonth)*100 + r.startDay
	end := int(r.endMonth)*100 + r.endDay
	return d >= start && d <= end
}

type termDatesFile struct {
	Terms map[string][]struct {
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	} `yaml:"terms"`
}

// loadTermDates parses the embedded term date dataset into per-jurisdiction
// ranges.
func loadTermDates() (map[types.Jurisdiction][]termRange, error) {
	var file termDatesFile
	if err := yaml.Unmarshal(termDatesYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse term dates: %w", err)
	}

	terms := make(map[types.Jurisdiction][]termRange, len(file.Terms))
	for name, ranges := range file.Terms {
		jur := types.Jurisdiction(name)
		for _, r := range ranges {
			startDay, startMonth, err := parseDayMonth(r.Start)
			if err != nil {
				return nil, fmt.Errorf("bad term start for %s: %w", name, err)
			}
			endDay, endMonth, err := parseDayMonth(r.End)
			if err != nil {
				return nil, fmt.Errorf("bad term end for %s: %w", name, err)
			}
			terms[jur] = append(terms[jur], termRange{
				startMonth: startMonth,
				startDay:   startDay,
				endMonth:   endMonth,
				endDay:     endDay,
			})
		}
	}
	return terms, nil
}

// parseDayMonth parses a "DD/MM" string.
func parseDayMonth(s string) (int, time.Month, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected DD/MM, got %q", s)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("out of range day/month %q", s)
	}
	return day, time.Month(month), nil
}
