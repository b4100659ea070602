// Package googlemaps resolves road distances through the Google Distance Matrix API.
package googlemaps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"quoting/internal/core/domain/model/address"
	"quoting/internal/core/domain/model/route"
	"quoting/internal/core/ports"

	"github.com/shopspring/decimal"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/distancematrix/json"

	// requestTimeout caps a single Distance Matrix call. Quoting is an
	// interactive path; a slow upstream must fail the request, not hang it.
	requestTimeout = 5 * time.Second
)

// ErrAPIKeyIsRequired is returned when the client is created without an API key.
var ErrAPIKeyIsRequired = errors.New("google maps api key is required")

// DistanceMatrixClient implements DistanceResolver against the Google
// Distance Matrix API. Unresolvable routes map to ports.ErrRouteNotFound so
// callers can distinguish "no road between these points" from transport
// failures.
type DistanceMatrixClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewDistanceMatrixClient creates a Distance Matrix client with the given API key.
// An empty baseURL selects the production Google endpoint.
func NewDistanceMatrixClient(apiKey string, baseURL string) (*DistanceMatrixClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrAPIKeyIsRequired
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &DistanceMatrixClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

// distanceMatrixResponse mirrors the subset of the Distance Matrix payload the
// engine needs.
type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int64 `json:"value"` // meters
			} `json:"distance"`
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// ResolveDistance returns the road distance between two addresses.
// Returns ports.ErrRouteNotFound when the API cannot resolve either endpoint
// or no road connects them.
func (c *DistanceMatrixClient) ResolveDistance(
	ctx context.Context, origin address.Address, destination address.Address,
) (route.Distance, error) {
	query := url.Values{}
	query.Set("origins", freeForm(origin))
	query.Set("destinations", freeForm(destination))
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return route.Distance{}, fmt.Errorf("build distance matrix request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return route.Distance{}, fmt.Errorf("call distance matrix api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return route.Distance{}, fmt.Errorf("distance matrix api returned status %s", resp.Status)
	}

	var payload distanceMatrixResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return route.Distance{}, fmt.Errorf("decode distance matrix response: %w", err)
	}

	return toDistance(payload)
}

// toDistance maps the API payload onto the domain distance value object.
func toDistance(payload distanceMatrixResponse) (route.Distance, error) {
	if payload.Status != "OK" {
		return route.Distance{}, fmt.Errorf("distance matrix api status %q: %w", payload.Status, ports.ErrRouteNotFound)
	}

	if len(payload.Rows) == 0 || len(payload.Rows[0].Elements) == 0 {
		return route.Distance{}, ports.ErrRouteNotFound
	}

	element := payload.Rows[0].Elements[0]
	if element.Status != "OK" {
		// NOT_FOUND and ZERO_RESULTS both mean the route cannot be quoted
		return route.Distance{}, fmt.Errorf("distance matrix element status %q: %w", element.Status, ports.ErrRouteNotFound)
	}

	km := decimal.NewFromInt(element.Distance.Value).Div(decimal.NewFromInt(1000))
	return route.NewDistance(km, element.Duration.Text)
}

// freeForm renders an address as a single comma-separated query string.
func freeForm(a address.Address) string {
	parts := make([]string, 0, 4)
	for _, part := range []string{a.Street(), a.City(), a.Region(), a.Country()} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, strings.TrimSpace(part))
		}
	}
	return strings.Join(parts, ", ")
}
