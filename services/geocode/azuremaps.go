package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"meetsync/models"
	"meetsync/utils"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://atlas.microsoft.com"

// AzureMapsService implements Geocoder against the Azure Maps search API.
type AzureMapsService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewAzureMapsService creates a Geocoder using the given subscription key.
func NewAzureMapsService(apiKey string) *AzureMapsService {
	return &AzureMapsService{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewAzureMapsServiceWithBaseURL is used by tests to point at a stub server.
func NewAzureMapsServiceWithBaseURL(apiKey, baseURL string) *AzureMapsService {
	svc := NewAzureMapsService(apiKey)
	svc.baseURL = baseURL
	return svc
}

type azureSearchResponse struct {
	Results []struct {
		Position struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"position"`
		Address struct {
			FreeformAddress    string `json:"freeformAddress"`
			Municipality       string `json:"municipality"`
			CountrySubdivision string `json:"countrySubdivision"`
			Country            string `json:"country"`
			PostalCode         string `json:"postalCode"`
		} `json:"address"`
	} `json:"results"`
}

func (s *AzureMapsService) search(ctx context.Context, query string, typeahead bool) (*azureSearchResponse, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("%w: API key not configured", ErrGeocodeUnavailable)
	}

	params := url.Values{}
	params.Set("api-version", "1.0")
	params.Set("subscription-key", s.apiKey)
	params.Set("query", query)
	if typeahead {
		params.Set("typeahead", "true")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/search/address/json?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeocodeUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrGeocodeUnavailable, resp.StatusCode)
	}

	var decoded azureSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: bad response: %v", ErrGeocodeUnavailable, err)
	}
	return &decoded, nil
}

// Geocode resolves a freeform address to coordinates and a normalized address.
func (s *AzureMapsService) Geocode(ctx context.Context, freeformAddress string) (*Result, error) {
	decoded, err := s.search(ctx, freeformAddress, false)
	if err != nil {
		return nil, err
	}
	if len(decoded.Results) == 0 {
		return nil, fmt.Errorf("%w: no results for %q", ErrGeocodeUnavailable, freeformAddress)
	}

	top := decoded.Results[0]
	return &Result{
		Coordinates:      models.Coordinates{Lat: top.Position.Lat, Lng: top.Position.Lon},
		FormattedAddress: top.Address.FreeformAddress,
		City:             top.Address.Municipality,
		State:            top.Address.CountrySubdivision,
		Country:          top.Address.Country,
		PostalCode:       top.Address.PostalCode,
	}, nil
}

// Suggest returns typeahead candidates for a partial address.
func (s *AzureMapsService) Suggest(ctx context.Context, query string) ([]Suggestion, error) {
	decoded, err := s.search(ctx, query, true)
	if err != nil {
		return nil, err
	}

	suggestions := make([]Suggestion, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		suggestions = append(suggestions, Suggestion{
			Address:     r.Address.FreeformAddress,
			Coordinates: models.Coordinates{Lat: r.Position.Lat, Lng: r.Position.Lon},
		})
	}
	return suggestions, nil
}

// JoinAddress flattens the structured location fields into the freeform query
// the geocoder expects, skipping blanks.
func JoinAddress(loc models.Location) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{loc.Address, loc.City, loc.State, loc.PostalCode, loc.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// MapsLink builds a shareable map link, preferring coordinates over the
// encoded address.
func MapsLink(coords *models.Coordinates, formattedAddress string) string {
	if coords != nil {
		return fmt.Sprintf("https://www.bing.com/maps?cp=%v~%v", coords.Lat, coords.Lng)
	}
	if formattedAddress != "" {
		return "https://www.bing.com/maps?q=" + url.QueryEscape(formattedAddress)
	}
	return ""
}

// ValidateLocation geocodes the submitted location. On geocoder failure the
// original fields are kept and the booking proceeds with an unvalidated
// address.
func ValidateLocation(ctx context.Context, geocoder Geocoder, loc models.Location) models.Location {
	result, err := geocoder.Geocode(ctx, JoinAddress(loc))
	if err != nil {
		utils.GetLogger().Warn("geocoding failed, keeping unvalidated address",
			zap.String("address", loc.Address), zap.Error(err))
		loc.FormattedAddress = JoinAddress(loc)
		loc.MapsLink = MapsLink(nil, loc.FormattedAddress)
		return loc
	}

	loc.Coordinates = &result.Coordinates
	loc.FormattedAddress = result.FormattedAddress
	if loc.City == "" {
		loc.City = result.City
	}
	if loc.State == "" {
		loc.State = result.State
	}
	if loc.Country == "" {
		loc.Country = result.Country
	}
	if loc.PostalCode == "" {
		loc.PostalCode = result.PostalCode
	}
	loc.MapsLink = MapsLink(loc.Coordinates, loc.FormattedAddress)
	return loc
}
