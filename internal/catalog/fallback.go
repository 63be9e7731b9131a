package catalog

import "github.com/Veraticus/windowwise/internal/model"

// Fallback returns the built-in catalog used whenever the configured source
// cannot be fetched or parsed. Its contents are fixed.
func Fallback() []model.Product {
	return []model.Product{
		{
			ID:              1,
			Brand:           "Milgard",
			Material:        model.MaterialFiberglass,
			Model:           "Ultra Sliding",
			WindowType:      model.WindowSliding,
			GlassType:       "Double Pane Low-E",
			PriceRangeLow:   600,
			PriceRangeHigh:  1100,
			EnergyRating:    "Energy Star Certified",
			UFactor:         0.29,
			SHGC:            0.32,
			WarrantyYears:   10,
			Features:        "Low-E coating, Smooth operation",
			PopularityScore: 82,
			CustomerRating:  4.2,
		},
		{
			ID:              2,
			Brand:           "Andersen",
			Material:        model.MaterialFibrex,
			Model:           "Acclaim Sliding",
			WindowType:      model.WindowSliding,
			GlassType:       "Double Pane Low-E",
			PriceRangeLow:   1500,
			PriceRangeHigh:  2500,
			EnergyRating:    "Energy Star Certified",
			UFactor:         0.22,
			SHGC:            0.27,
			WarrantyYears:   20,
			Features:        "Fibrex low maintenance, Customizable colors",
			PopularityScore: 90,
			CustomerRating:  4.6,
		},
	}
}
