package solar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chargecost/chargecost/pkg/common"
	"github.com/chargecost/chargecost/pkg/types"
	"github.com/levenlabs/go-lflag"
)

// Client implements Provider against the weather history API, which serves
// sunrise/sunset, measured sun hours and hourly weather per location+date.
type Client struct {
	apiURL string
	client *http.Client
}

// Configured sets up flags for the weather API and returns the instance.
func Configured() *Client {
	c := &Client{
		client: common.HTTPClient(10 * time.Second),
	}
	apiURL := lflag.String("weather-api-url", "http://118.138.246.158/api/v1/weather", "URL for the hourly weather history API")

	lflag.Do(func() {
		c.apiURL = *apiURL
	})

	return c
}

// Validate ensures the configuration is valid.
func (c *Client) Validate() error {
	if c.apiURL == "" {
		return fmt.Errorf("weather-api-url is required")
	}
	return nil
}

type hourlyWeather struct {
	Hour          int     `json:"hour"`
	CloudCoverPct float64 `json:"cloudCoverPct"`
}

type weatherResponse struct {
	Sunrise              string          `json:"sunrise"`
	Sunset               string          `json:"sunset"`
	SunHours             float64         `json:"sunHours"`
	HourlyWeatherHistory []hourlyWeather `json:"hourlyWeatherHistory"`
}

// Day fetches the solar profile for one location and date.
func (c *Client) Day(ctx context.Context, locationID string, date time.Time) (types.SolarDay, error) {
	u := c.apiURL + "?location=" + locationID + "&date=" + date.Format("2006-01-02")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return types.SolarDay{}, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return types.SolarDay{}, fmt.Errorf("%w: weather lookup: %s", types.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.SolarDay{}, fmt.Errorf("%w: weather lookup returned status %d", types.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var parsed weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return types.SolarDay{}, fmt.Errorf("%w: failed to decode weather response: %s", types.ErrUpstreamUnavailable, err)
	}

	sunrise, err := minuteOfDay(parsed.Sunrise)
	if err != nil {
		return types.SolarDay{}, fmt.Errorf("%w: bad sunrise %q: %s", types.ErrUpstreamUnavailable, parsed.Sunrise, err)
	}
	sunset, err := minuteOfDay(parsed.Sunset)
	if err != nil {
		return types.SolarDay{}, fmt.Errorf("%w: bad sunset %q: %s", types.ErrUpstreamUnavailable, parsed.Sunset, err)
	}

	day := types.SolarDay{
		Date:          date,
		SunriseMinute: sunrise,
		SunsetMinute:  sunset,
		SunHours:      parsed.SunHours,
	}

	if len(parsed.HourlyWeatherHistory) > 0 {
		hours := parsed.HourlyWeatherHistory
		sort.Slice(hours, func(i, j int) bool { return hours[i].Hour < hours[j].Hour })
		day.HourlyCloudCoverPct = make([]float64, len(hours))
		for i, h := range hours {
			day.HourlyCloudCoverPct[i] = h.CloudCoverPct
		}
	}

	return day, nil
}

// minuteOfDay parses an "HH:MM:SS" (or "HH:MM") clock string into a minute of
// the day. Seconds are dropped; the simulation has no sub-minute precision.
func minuteOfDay(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("expected HH:MM[:SS], got %q", clock)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	return hours*60 + minutes, nil
}
