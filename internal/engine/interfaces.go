package engine

import "github.com/Veraticus/windowwise/internal/model"

// Pricer defines the contract for per-window cost estimation.
// Implementations must be pure: identical inputs give identical results.
type Pricer interface {
	Price(product model.Product, location string, age model.HomeAge) model.PricingResult
}

// ManufacturerLookup resolves brand metadata used for reputation scoring.
type ManufacturerLookup interface {
	Lookup(brand string) (model.Manufacturer, bool)
}

// InstallGuide describes installation requirements by home age.
type InstallGuide func(age model.HomeAge) model.InstallRequirements
