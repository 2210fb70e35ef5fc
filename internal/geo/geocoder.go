package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Geocoder resolves a free-text location ("Parramatta NSW") to coordinates.
// A nil Point with a nil error means the location could not be resolved,
// callers are expected to degrade gracefully rather than fail the request.
type Geocoder interface {
	Resolve(ctx context.Context, location string) (*Point, error)
}

// NominatimClient geocodes through the OpenStreetMap Nominatim search API.
type NominatimClient struct {
	baseURL     string
	countryCode string
	httpClient  *http.Client
}

// NewNominatimClient builds a client against baseURL
// (e.g. "https://nominatim.openstreetmap.org"). Results are biased to
// Australia since that is where all our workers are.
func NewNominatimClient(baseURL string) *NominatimClient {
	return &NominatimClient{
		baseURL:     baseURL,
		countryCode: "au",
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (n *NominatimClient) Resolve(ctx context.Context, location string) (*Point, error) {
	params := url.Values{}
	params.Set("q", location)
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("countrycodes", n.countryCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	// Nominatim's usage policy requires an identifying User-Agent
	req.Header.Set("User-Agent", "ndiscare-backend/1.0")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		// Not an error: unresolvable location means "no distance ranking"
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoder returned bad latitude %q", results[0].Lat)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoder returned bad longitude %q", results[0].Lon)
	}
	return &Point{Latitude: lat, Longitude: lng}, nil
}
