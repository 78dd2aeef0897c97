package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/chargecost/chargecost/pkg/common"
	"github.com/chargecost/chargecost/pkg/types"
	"github.com/levenlabs/go-lflag"
)

// Client implements Resolver against the location lookup API, which returns
// every suburb registered under a postcode.
type Client struct {
	apiURL string
	client *http.Client
}

// Configured sets up flags for the location API and returns the instance.
func Configured() *Client {
	c := &Client{
		client: common.HTTPClient(10 * time.Second),
	}
	apiURL := lflag.String("location-api-url", "http://118.138.246.158/api/v1/location", "URL for the location lookup API")

	lflag.Do(func() {
		c.apiURL = *apiURL
	})

	return c
}

// Validate ensures the configuration is valid.
func (c *Client) Validate() error {
	if c.apiURL == "" {
		return fmt.Errorf("location-api-url is required")
	}
	return nil
}

type locationEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Resolve looks up the location id for a suburb. Suburb matching is
// case-insensitive; the API stores names upper-cased.
func (c *Client) Resolve(ctx context.Context, postcode int, suburb string) (string, error) {
	u := c.apiURL + "?postcode=" + strconv.Itoa(postcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create location request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: location lookup: %s", types.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: location lookup returned status %d", types.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var entries []locationEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return "", fmt.Errorf("%w: failed to decode location response: %s", types.ErrUpstreamUnavailable, err)
	}

	want := strings.ToUpper(suburb)
	for _, entry := range entries {
		if entry.Name == want {
			return entry.ID, nil
		}
	}
	return "", fmt.Errorf("%w: suburb %q under postcode %d", types.ErrLocationNotFound, suburb, postcode)
}
