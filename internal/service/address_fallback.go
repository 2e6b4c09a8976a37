package service

import (
	"strings"

	"github.com/MKhiriev/solar-quote/models"
)

// DefaultCoordinates is the geographic centre of metropolitan France, used
// when a city is not in the fallback table.
var DefaultCoordinates = models.Coordinates{Lat: 46.603354, Lon: 1.888334}

var fallbackCities = map[string]models.Coordinates{
	"paris":       {Lat: 48.8566, Lon: 2.3522},
	"lyon":        {Lat: 45.7578, Lon: 4.8320},
	"marseille":   {Lat: 43.2965, Lon: 5.3698},
	"bordeaux":    {Lat: 44.8378, Lon: -0.5792},
	"lille":       {Lat: 50.6292, Lon: 3.0573},
	"toulouse":    {Lat: 43.6047, Lon: 1.4442},
	"nice":        {Lat: 43.7102, Lon: 7.2620},
	"nantes":      {Lat: 47.2184, Lon: -1.5536},
	"strasbourg":  {Lat: 48.5734, Lon: 7.7521},
	"montpellier": {Lat: 43.6108, Lon: 3.8767},
}

// FallbackCoordinates looks city up in a static table of large French
// cities, ignoring case and surrounding spaces. Unknown cities get
// [DefaultCoordinates] and false.
func FallbackCoordinates(city string) (models.Coordinates, bool) {
	if coordinates, ok := fallbackCities[strings.ToLower(strings.TrimSpace(city))]; ok {
		return coordinates, true
	}
	return DefaultCoordinates, false
}
