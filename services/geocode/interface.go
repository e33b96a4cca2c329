package geocode

import (
	"context"
	"errors"

	"meetsync/models"
)

// ErrGeocodeUnavailable signals that the geocoding provider could not resolve
// the address. Callers fall back to the unvalidated address; this is never
// fatal to a booking.
var ErrGeocodeUnavailable = errors.New("geocoding service unavailable")

// Result is a resolved address.
type Result struct {
	Coordinates      models.Coordinates
	FormattedAddress string
	City             string
	State            string
	Country          string
	PostalCode       string
}

// Suggestion is a typeahead candidate for address entry.
type Suggestion struct {
	Address     string             `json:"address"`
	Coordinates models.Coordinates `json:"coordinates"`
}

// Geocoder resolves freeform addresses to coordinates.
type Geocoder interface {
	// Geocode resolves a freeform address, or fails with
	// ErrGeocodeUnavailable.
	Geocode(ctx context.Context, freeformAddress string) (*Result, error)
	// Suggest returns typeahead candidates for a partial address.
	Suggest(ctx context.Context, query string) ([]Suggestion, error)
}
