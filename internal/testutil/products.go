package testutil

import "github.com/Veraticus/windowwise/internal/model"

// ProductBuilder builds catalog products fluently.
//
//	p := testutil.NewProduct("Milgard").Type(model.WindowSliding).Price(700, 1000).Build()
type ProductBuilder struct {
	p model.Product
}

// NewProduct starts a valid vinyl double-hung product for brand.
func NewProduct(brand string) *ProductBuilder {
	return &ProductBuilder{p: model.Product{
		Brand:          brand,
		Series:         "Test Series",
		WindowType:     model.WindowDoubleHung,
		Material:       model.MaterialVinyl,
		PriceRangeLow:  400,
		PriceRangeHigh: 600,
	}}
}

// ID sets the catalog id.
func (b *ProductBuilder) ID(id int) *ProductBuilder {
	b.p.ID = id
	return b
}

// Series sets the series.
func (b *ProductBuilder) Series(series string) *ProductBuilder {
	b.p.Series = series
	return b
}

// Model sets the model.
func (b *ProductBuilder) Model(m string) *ProductBuilder {
	b.p.Model = m
	return b
}

// Type sets the window type.
func (b *ProductBuilder) Type(t model.WindowType) *ProductBuilder {
	b.p.WindowType = t
	return b
}

// Material sets the frame material.
func (b *ProductBuilder) Material(m model.FrameMaterial) *ProductBuilder {
	b.p.Material = m
	return b
}

// Price sets the price range.
func (b *ProductBuilder) Price(low, high int) *ProductBuilder {
	b.p.PriceRangeLow = low
	b.p.PriceRangeHigh = high
	return b
}

// Ratings sets U-Factor and SHGC.
func (b *ProductBuilder) Ratings(uFactor, shgc float64) *ProductBuilder {
	b.p.UFactor = uFactor
	b.p.SHGC = shgc
	return b
}

// STC sets the sound transmission class.
func (b *ProductBuilder) STC(stc int) *ProductBuilder {
	b.p.STC = stc
	return b
}

// Warranty sets the warranty length in years.
func (b *ProductBuilder) Warranty(years int) *ProductBuilder {
	b.p.WarrantyYears = years
	return b
}

// Features sets the free-text features.
func (b *ProductBuilder) Features(features string) *ProductBuilder {
	b.p.Features = features
	return b
}

// Build returns the product.
func (b *ProductBuilder) Build() model.Product {
	p := b.p
	p.Extra = append([]model.ExtraField(nil), b.p.Extra...)
	return p
}

// SampleCatalog is a small mixed catalog covering every window type the
// wizard offers and all three budget bands.
func SampleCatalog() []model.Product {
	return []model.Product{
		NewProduct("Milgard").ID(1).Series("Ultra").Model("C650").Type(model.WindowSliding).
			Material(model.MaterialFiberglass).Price(700, 1000).Ratings(0.27, 0.22).STC(28).Warranty(30).Build(),
		NewProduct("Andersen").ID(2).Series("100 Series").Type(model.WindowCasement).
			Material(model.MaterialFibrex).Price(500, 900).Ratings(0.24, 0.25).Warranty(20).Build(),
		NewProduct("Pella").ID(3).Series("250 Series").Type(model.WindowDoubleHung).
			Material(model.MaterialVinyl).Price(350, 550).Ratings(0.29, 0.27).STC(30).Warranty(20).Build(),
		NewProduct("Marvin").ID(4).Series("Ultimate").Type(model.WindowPicture).
			Material(model.MaterialWood).Price(1400, 2200).Ratings(0.22, 0.21).Warranty(20).Build(),
		NewProduct("Simonton").ID(5).Series("Reflections 5500").Type(model.WindowDoubleHung).
			Material(model.MaterialVinyl).Price(300, 500).Ratings(0.26, 0.24).Warranty(25).Build(),
	}
}
