// Package climate maps a "City, REGION" location to a coarse climate zone.
package climate

import (
	"strings"
	"unicode"

	"github.com/Veraticus/windowwise/internal/model"
)

// Zone describes the climate of a region.
type Zone struct {
	Region      string
	Code        string
	Description string
	Climate     model.Climate
	Heating     bool
	Cooling     bool
	Known       bool
}

// Label renders the zone as shown to the user, e.g. "4C - Mixed-Humid, Cold Winters".
func (z Zone) Label() string {
	if !z.Known {
		return z.Description
	}
	return z.Code + " - " + z.Description
}

// DefaultZone is returned for locations whose region is not in the table.
// It is temperate, so no climate bonus applies.
var DefaultZone = Zone{
	Code:        "",
	Description: "Unknown region, temperate default",
	Climate:     model.ClimateMixed,
}

var zones = []Zone{
	{Region: "WA", Code: "4C", Heating: true, Description: "Mixed-Humid, Cold Winters"},
	{Region: "CA", Code: "3B", Cooling: true, Description: "Warm-Dry, Hot Summers"},
	{Region: "FL", Code: "1A", Cooling: true, Description: "Very Hot-Humid"},
	{Region: "TX", Code: "2A", Cooling: true, Description: "Hot-Humid"},
	{Region: "NY", Code: "4A", Heating: true, Description: "Mixed-Humid"},
	{Region: "IL", Code: "5A", Heating: true, Description: "Cool-Humid"},
	{Region: "CO", Code: "5B", Heating: true, Description: "Cool-Dry"},
	{Region: "AZ", Code: "2B", Cooling: true, Description: "Hot-Dry"},
}

var byRegion = func() map[string]Zone {
	m := make(map[string]Zone, len(zones))
	for _, z := range zones {
		z.Known = true
		z.Climate = classify(z.Heating, z.Cooling)
		m[z.Region] = z
	}
	return m
}()

// classify derives the climate descriptor. Heating wins over cooling.
func classify(heating, cooling bool) model.Climate {
	switch {
	case heating:
		return model.ClimateCold
	case cooling:
		return model.ClimateHot
	default:
		return model.ClimateMixed
	}
}

// RegionFromLocation extracts the two-letter region code from "City, REGION".
// It returns "" when the location does not have that shape.
func RegionFromLocation(location string) string {
	idx := strings.LastIndex(location, ",")
	if idx < 0 {
		return ""
	}
	city := strings.TrimSpace(location[:idx])
	region := strings.ToUpper(strings.TrimSpace(location[idx+1:]))
	if city == "" || len(region) != 2 {
		return ""
	}
	for _, r := range region {
		if !unicode.IsLetter(r) {
			return ""
		}
	}
	return region
}

// Lookup returns the zone for a location, or DefaultZone when the region is unknown.
func Lookup(location string) Zone {
	return LookupRegion(RegionFromLocation(location))
}

// LookupRegion returns the zone for a two-letter region code.
func LookupRegion(region string) Zone {
	if z, ok := byRegion[strings.ToUpper(region)]; ok {
		return z
	}
	return DefaultZone
}

// Zones lists the known zones in table order.
func Zones() []Zone {
	out := make([]Zone, 0, len(zones))
	for _, z := range zones {
		out = append(out, byRegion[z.Region])
	}
	return out
}
