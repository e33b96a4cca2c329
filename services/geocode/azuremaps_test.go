package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetsync/models"
)

const searchResponse = `{
	"results": [
		{
			"position": {"lat": 47.6062, "lon": -122.3321},
			"address": {
				"freeformAddress": "400 Broad St, Seattle, WA 98109",
				"municipality": "Seattle",
				"countrySubdivision": "WA",
				"country": "United States",
				"postalCode": "98109"
			}
		}
	]
}`

func stubServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/address/json", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("subscription-key"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestGeocode(t *testing.T) {
	srv := stubServer(t, http.StatusOK, searchResponse)
	defer srv.Close()

	svc := NewAzureMapsServiceWithBaseURL("test-key", srv.URL)
	result, err := svc.Geocode(context.Background(), "400 Broad St, Seattle")
	require.NoError(t, err)

	assert.Equal(t, 47.6062, result.Coordinates.Lat)
	assert.Equal(t, -122.3321, result.Coordinates.Lng)
	assert.Equal(t, "400 Broad St, Seattle, WA 98109", result.FormattedAddress)
	assert.Equal(t, "Seattle", result.City)
}

func TestGeocodeNoResults(t *testing.T) {
	srv := stubServer(t, http.StatusOK, `{"results": []}`)
	defer srv.Close()

	svc := NewAzureMapsServiceWithBaseURL("test-key", srv.URL)
	_, err := svc.Geocode(context.Background(), "nowhere")
	assert.ErrorIs(t, err, ErrGeocodeUnavailable)
}

func TestGeocodeUpstreamError(t *testing.T) {
	srv := stubServer(t, http.StatusInternalServerError, "")
	defer srv.Close()

	svc := NewAzureMapsServiceWithBaseURL("test-key", srv.URL)
	_, err := svc.Geocode(context.Background(), "somewhere")
	assert.ErrorIs(t, err, ErrGeocodeUnavailable)
}

func TestGeocodeMissingKey(t *testing.T) {
	svc := NewAzureMapsService("")
	_, err := svc.Geocode(context.Background(), "somewhere")
	assert.ErrorIs(t, err, ErrGeocodeUnavailable)
}

func TestSuggest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("typeahead"))
		_, _ = w.Write([]byte(searchResponse))
	}))
	defer srv.Close()

	svc := NewAzureMapsServiceWithBaseURL("test-key", srv.URL)
	suggestions, err := svc.Suggest(context.Background(), "400 Broad")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "400 Broad St, Seattle, WA 98109", suggestions[0].Address)
}

func TestValidateLocationFallsBack(t *testing.T) {
	svc := NewAzureMapsService("") // always unavailable
	loc := models.Location{Address: "1 Main St", City: "Springfield", Country: "US"}

	validated := ValidateLocation(context.Background(), svc, loc)

	assert.Nil(t, validated.Coordinates)
	assert.Equal(t, "1 Main St, Springfield, US", validated.FormattedAddress)
	assert.Contains(t, validated.MapsLink, "bing.com/maps?q=")
}

func TestJoinAddressSkipsBlanks(t *testing.T) {
	loc := models.Location{Address: "1 Main St", Country: "US"}
	assert.Equal(t, "1 Main St, US", JoinAddress(loc))
}
