// Package pricing estimates installed cost per window.
package pricing

import (
	"github.com/Veraticus/windowwise/internal/climate"
	"github.com/Veraticus/windowwise/internal/model"
	"github.com/shopspring/decimal"
)

// DefaultHomeAge is assumed when the home age question was not answered.
const DefaultHomeAge = model.HomeAgeMedium

// DefaultBaseInstallation is the installation labor cost per window before the home age multiplier.
var DefaultBaseInstallation = decimal.NewFromInt(200)

// bracket holds everything that varies with home age.
type bracket struct {
	requirements model.InstallRequirements
	multiplier   decimal.Decimal
}

var brackets = map[model.HomeAge]bracket{
	model.HomeAgeNew: {
		multiplier: decimal.NewFromFloat(1.0),
		requirements: model.InstallRequirements{
			Method:    "Insert or Full-Frame",
			Timeframe: "1-2 days per 8-10 windows",
			Permits:   "Usually not required",
		},
	},
	model.HomeAgeMedium: {
		multiplier: decimal.NewFromFloat(1.1),
		requirements: model.InstallRequirements{
			Method:    "Likely Insert",
			Timeframe: "1-3 days per 8-10 windows",
			Permits:   "Check local requirements",
		},
	},
	model.HomeAgeOld: {
		multiplier: decimal.NewFromFloat(1.3),
		requirements: model.InstallRequirements{
			Method:    "Often Full-Frame",
			Timeframe: "2-4 days per 8-10 windows",
			Permits:   "Likely required",
		},
	},
	model.HomeAgeHistoric: {
		multiplier: decimal.NewFromFloat(1.5),
		requirements: model.InstallRequirements{
			Method:    "Specialized Full-Frame",
			Timeframe: "3-5 days per 8-10 windows",
			Permits:   "Historic approval required",
		},
	},
}

// DefaultLocationFactors are cost-of-living multipliers keyed by region code.
func DefaultLocationFactors() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"WA": decimal.NewFromFloat(1.15),
		"CA": decimal.NewFromFloat(1.25),
		"NY": decimal.NewFromFloat(1.20),
		"FL": decimal.NewFromFloat(1.05),
		"TX": decimal.NewFromFloat(1.00),
		"IL": decimal.NewFromFloat(1.10),
		"CO": decimal.NewFromFloat(1.08),
		"AZ": decimal.NewFromFloat(1.03),
	}
}

// Calculator prices products. It holds only read-only tables, so a single
// instance may be shared.
type Calculator struct {
	locationFactors  map[string]decimal.Decimal
	baseInstallation decimal.Decimal
}

// NewCalculator returns a calculator using the default tables.
func NewCalculator() *Calculator {
	return &Calculator{
		locationFactors:  DefaultLocationFactors(),
		baseInstallation: DefaultBaseInstallation,
	}
}

// LocationFactor returns the multiplier for the region in location, 1.0 when unknown.
func (c *Calculator) LocationFactor(location string) decimal.Decimal {
	if f, ok := c.locationFactors[climate.RegionFromLocation(location)]; ok {
		return f
	}
	return decimal.NewFromInt(1)
}

// Price estimates the installed cost of one window of product p.
// Window and installation are each rounded to whole currency units and
// Total is their sum.
func (c *Calculator) Price(p model.Product, location string, age model.HomeAge) model.PricingResult {
	midpoint := decimal.NewFromInt(int64(p.PriceRangeLow) + int64(p.PriceRangeHigh)).Div(decimal.NewFromInt(2))
	window := midpoint.Mul(c.LocationFactor(location)).Round(0)
	installation := c.baseInstallation.Mul(bracketFor(age).multiplier).Round(0)

	w := int(window.IntPart())
	i := int(installation.IntPart())
	return model.PricingResult{
		Window:       w,
		Installation: i,
		Total:        w + i,
	}
}

// InstallRequirements describes installation for a home of the given age.
func InstallRequirements(age model.HomeAge) model.InstallRequirements {
	return bracketFor(age).requirements
}

// Multiplier returns the installation cost multiplier for a home age bracket.
func Multiplier(age model.HomeAge) decimal.Decimal {
	return bracketFor(age).multiplier
}

func bracketFor(age model.HomeAge) bracket {
	if b, ok := brackets[age]; ok {
		return b
	}
	return brackets[DefaultHomeAge]
}
