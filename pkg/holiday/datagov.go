package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/chargecost/chargecost/pkg/common"
	"github.com/chargecost/chargecost/pkg/log"
	"github.com/chargecost/chargecost/pkg/types"
	"github.com/levenlabs/go-lflag"
)

// recordCacheTTL bounds how long one fetched copy of the holiday dataset is
// reused before refetching. The dataset changes at most a few times a year so
// this is purely to avoid hammering the API across calculations.
const recordCacheTTL = 15 * time.Minute

// DataGov implements Registry against the data.gov.au datastore search API,
// which returns the full national public holiday dataset in one response.
type DataGov struct {
	apiURL string
	client *http.Client

	mu            sync.Mutex
	lastFetchTime time.Time
	cachedRecords []holidayRecord
}

// Configured sets up flags for the data.gov.au registry and returns the
// instance.
func Configured() *DataGov {
	d := &DataGov{
		client: common.HTTPClient(10 * time.Second),
	}
	apiURL := lflag.String(
		"holiday-api-url",
		"https://data.gov.au/data/api/3/action/datastore_search?resource_id=33673aca-0857-42e5-b8f0-9981b4755686",
		"URL for the public holiday dataset search API",
	)

	lflag.Do(func() {
		d.apiURL = *apiURL
	})

	return d
}

// Validate ensures the configuration is valid.
func (d *DataGov) Validate() error {
	if d.apiURL == "" {
		return fmt.Errorf("holiday-api-url is required")
	}
	return nil
}

type holidayRecord struct {
	Date         string `json:"Date"`
	Jurisdiction string `json:"Jurisdiction"`
}

type datastoreResponse struct {
	Success bool `json:"success"`
	Result  struct {
		Records []holidayRecord `json:"records"`
	} `json:"result"`
}

func (d *DataGov) fetchRecords(ctx context.Context) ([]holidayRecord, error) {
	now := time.Now()

	d.mu.Lock()
	if !d.lastFetchTime.IsZero() && now.Sub(d.lastFetchTime) < recordCacheTTL {
		records := d.cachedRecords
		d.mu.Unlock()
		return records, nil
	}
	d.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create holiday request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: holiday registry: %s", types.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: holiday registry returned status %d", types.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var parsed datastoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode holiday response: %s", types.ErrUpstreamUnavailable, err)
	}
	if !parsed.Success {
		return nil, fmt.Errorf("%w: holiday registry reported failure", types.ErrUpstreamUnavailable)
	}

	log.Ctx(ctx).DebugContext(ctx, "fetched public holiday dataset",
		slog.Int("records", len(parsed.Result.Records)))

	d.mu.Lock()
	d.cachedRecords = parsed.Result.Records
	d.lastFetchTime = now
	d.mu.Unlock()

	return parsed.Result.Records, nil
}

// HolidaysOn returns every jurisdiction with a public holiday on the given
// date. The dataset keys dates as YYYYMMDD strings.
func (d *DataGov) HolidaysOn(ctx context.Context, date time.Time) (types.JurisdictionSet, error) {
	records, err := d.fetchRecords(ctx)
	if err != nil {
		return nil, err
	}

	key := date.Format("20060102")
	set := make(types.JurisdictionSet)
	for _, rec := range records {
		if rec.Date == key {
			set.Add(types.Jurisdiction(strings.ToLower(rec.Jurisdiction)))
		}
	}
	return set, nil
}
