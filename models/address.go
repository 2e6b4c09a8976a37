// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Feature types returned by the national address geocoder. Only
// [FeatureTypeHouseNumber] and [FeatureTypeStreet] are kept as suggestions.
const (
	FeatureTypeHouseNumber  = "housenumber"
	FeatureTypeStreet       = "street"
	FeatureTypeLocality     = "locality"
	FeatureTypeMunicipality = "municipality"
)

// AddressFeature is a single GeoJSON feature returned by the geocoder.
type AddressFeature struct {
	Type       string            `json:"type"`
	Geometry   AddressGeometry   `json:"geometry"`
	Properties AddressProperties `json:"properties"`
}

// AddressGeometry holds the point geometry of a feature. Coordinates are in
// GeoJSON order: [longitude, latitude].
type AddressGeometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// AddressProperties carries the descriptive fields of a feature.
type AddressProperties struct {
	Label       string  `json:"label"`
	Score       float64 `json:"score"`
	HouseNumber string  `json:"housenumber,omitempty"`
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	PostCode    string  `json:"postcode"`
	CityCode    string  `json:"citycode"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	City        string  `json:"city"`
	District    string  `json:"district,omitempty"`
	Context     string  `json:"context"`
	Importance  float64 `json:"importance"`
	Street      string  `json:"street,omitempty"`
}

// Coordinates returns the feature position as latitude/longitude. ok is false
// when the geometry does not carry a full coordinate pair.
func (f AddressFeature) Coordinates() (Coordinates, bool) {
	if len(f.Geometry.Coordinates) < 2 {
		return Coordinates{}, false
	}
	return Coordinates{Lat: f.Geometry.Coordinates[1], Lon: f.Geometry.Coordinates[0]}, true
}

// IsSuggestion reports whether the feature is precise enough to be offered
// as an address suggestion (a house number or a street).
func (f AddressFeature) IsSuggestion() bool {
	return f.Properties.Type == FeatureTypeHouseNumber || f.Properties.Type == FeatureTypeStreet
}

// SearchResponse is the envelope returned by the geocoder search endpoint.
//
// Features is kept raw so that a payload whose "features" member is missing
// or is not an array can be told apart from an empty result.
type SearchResponse struct {
	Type        string          `json:"type"`
	Version     string          `json:"version"`
	Features    json.RawMessage `json:"features"`
	Attribution string          `json:"attribution"`
	Licence     string          `json:"licence"`
	Query       string          `json:"query"`
	Limit       int             `json:"limit"`
}

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// AddressValidationRequest is the manual-entry address submitted by the
// front-end when no suggestion was picked.
type AddressValidationRequest struct {
	Address    string `json:"address" validate:"min=4"`
	PostalCode string `json:"postalCode" validate:"postalcode_fr"`
	City       string `json:"city" validate:"min=2"`
}

// AddressValidationResponse reports the validation verdict and, when invalid,
// a message per offending field.
type AddressValidationResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// FallbackCoordinatesResponse is returned by the city fallback endpoint.
// Matched is false when the nationwide default was used.
type FallbackCoordinatesResponse struct {
	Coordinates
	Matched bool `json:"matched"`
}
