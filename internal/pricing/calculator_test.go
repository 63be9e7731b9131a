package pricing

import (
	"testing"

	"github.com/Veraticus/windowwise/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculator_Price(t *testing.T) {
	milgard := model.Product{Brand: "Milgard", WindowType: model.WindowSliding, PriceRangeLow: 600, PriceRangeHigh: 1100}
	andersen := model.Product{Brand: "Andersen", WindowType: model.WindowSliding, PriceRangeLow: 1500, PriceRangeHigh: 2500}

	tests := []struct {
		name     string
		location string
		age      model.HomeAge
		product  model.Product
		want     model.PricingResult
	}{
		{
			name:     "Seattle rounds half up",
			product:  milgard,
			location: "Seattle, WA",
			age:      model.HomeAgeMedium,
			want:     model.PricingResult{Window: 978, Installation: 220, Total: 1198},
		},
		{
			name:     "Miami new home",
			product:  andersen,
			location: "Miami, FL",
			age:      model.HomeAgeNew,
			want:     model.PricingResult{Window: 2100, Installation: 200, Total: 2300},
		},
		{
			name:     "unknown region uses factor one",
			product:  milgard,
			location: "Portland, OR",
			age:      model.HomeAgeHistoric,
			want:     model.PricingResult{Window: 850, Installation: 300, Total: 1150},
		},
		{
			name:     "half-unit midpoint",
			product:  model.Product{Brand: "JELD-WEN", WindowType: model.WindowPicture, PriceRangeLow: 601, PriceRangeHigh: 1100},
			location: "Austin, TX",
			age:      model.HomeAgeOld,
			want:     model.PricingResult{Window: 851, Installation: 260, Total: 1111},
		},
		{
			name:     "missing home age defaults to medium",
			product:  milgard,
			location: "",
			age:      "",
			want:     model.PricingResult{Window: 850, Installation: 220, Total: 1070},
		},
	}

	calc := NewCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Price(tt.product, tt.location, tt.age)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Window+got.Installation, got.Total)
			assert.Equal(t, got, calc.Price(tt.product, tt.location, tt.age), "pricing is pure")
		})
	}
}

func TestMultiplierIncreasesWithAge(t *testing.T) {
	ages := []model.HomeAge{model.HomeAgeNew, model.HomeAgeMedium, model.HomeAgeOld, model.HomeAgeHistoric}
	for i := 1; i < len(ages); i++ {
		assert.True(t, Multiplier(ages[i]).GreaterThan(Multiplier(ages[i-1])), ages[i])
	}
	assert.True(t, Multiplier(model.HomeAgeHistoric).GreaterThanOrEqual(decimal.NewFromFloat(1.5)))
}

func TestInstallRequirements(t *testing.T) {
	assert.Equal(t, "Historic approval required", InstallRequirements(model.HomeAgeHistoric).Permits)
	assert.Equal(t, InstallRequirements(model.HomeAgeMedium), InstallRequirements("unknown"))
}
