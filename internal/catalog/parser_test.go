package catalog

import (
	"strings"
	"testing"

	"github.com/Veraticus/windowwise/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `id,brand,model,windowType,material,glassType,priceRangeLow,priceRangeHigh,energyRating,uFactor,shgc,warrantyYears,features,popularityScore,customerRating,installerNotes
1,Pella,250 Series Casement,Casement,Vinyl,Double Pane Low-E,450,800,Energy Star Certified,0.27,0.25,20,"Low-E glass, Multi-point lock",75,4.3,ships flat
2,"Marvin","Elevate Double-Hung",Double-Hung,Fiberglass,Triple Pane,1200,2100,Energy Star Most Efficient,0.19,0.22,20,"Triple pane, Wood interior",88,4.7,

3,,Nameless,Picture,Vinyl,Double Pane,300,500,,0.3,0.3,10,,10,3.0,
4,Milgard,Tuscany,Sliding,Vinyl,Double Pane,abc,700,,0.3,0.3,10,,10,3.0,
5,JELD-WEN,Builders,Picture,Vinyl,Double Pane,350,600,,not-a-number,0.4,5 years,,x,4.1
`

func TestParse(t *testing.T) {
	products, stats, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, ParseStats{Rows: 5, Loaded: 3, Dropped: 2}, stats)
	require.Len(t, products, 3)

	pella := products[0]
	assert.Equal(t, 1, pella.ID)
	assert.Equal(t, "Pella", pella.Brand)
	assert.Equal(t, model.WindowCasement, pella.WindowType)
	assert.Equal(t, model.MaterialVinyl, pella.Material)
	assert.Equal(t, 450, pella.PriceRangeLow)
	assert.Equal(t, 800, pella.PriceRangeHigh)
	assert.InDelta(t, 0.27, pella.UFactor, 1e-9)
	assert.Equal(t, "Low-E glass, Multi-point lock", pella.Features)
	assert.Equal(t, []model.ExtraField{{Name: "installerNotes", Value: "ships flat"}}, pella.Extra)

	marvin := products[1]
	assert.Equal(t, "Marvin", marvin.Brand, "quotes are stripped")
	assert.Equal(t, "Elevate Double-Hung", marvin.Model)

	jeldwen := products[2]
	assert.Zero(t, jeldwen.UFactor, "malformed float falls back to zero")
	assert.Equal(t, 5, jeldwen.WarrantyYears, "leading integer is kept")
	assert.Zero(t, jeldwen.PopularityScore)
	assert.Equal(t, []model.ExtraField{{Name: "installerNotes", Value: ""}}, jeldwen.Extra, "ragged rows are padded")
}

func TestParse_HeaderAliases(t *testing.T) {
	input := "Brand,Series,Model,Frame,WindowType,U-Factor,STC,PriceRangeLow\n" +
		"Milgard,C650 Ultra,C650 Horizontal Slider,Fiberglass,Sliding,0.28,36,700\n"

	products, _, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, "C650 Ultra", p.Series)
	assert.Equal(t, model.MaterialFiberglass, p.Material)
	assert.InDelta(t, 0.28, p.UFactor, 1e-9)
	assert.Equal(t, 36, p.STC)
	assert.Empty(t, p.Extra)
}

func TestParse_Empty(t *testing.T) {
	_, _, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)

	products, stats, err := Parse(strings.NewReader("brand,windowType,priceRangeLow\n"))
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Equal(t, ParseStats{}, stats)
}

func TestParseInt(t *testing.T) {
	tests := map[string]int{
		"1100":     1100,
		" 42 ":     42,
		"1100.00":  1100,
		"20 years": 20,
		"-5":       -5,
		"abc":      0,
		"":         0,
		"Lifetime": 0,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseInt(in), in)
	}
}

func TestParse_NormalizesTypeAndMaterial(t *testing.T) {
	input := "brand,windowType,material,priceRangeLow,priceRangeHigh\n" +
		"Milgard,sliding,fiberglass,600,1100\n" +
		"Pella,DOUBLE-HUNG,Vinyl ,450,800\n" +
		"Andersen,Casement,Aluminium,900,1400\n" +
		"Loewen,Bay,Douglas Fir,2000,3500\n"

	products, stats, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, ParseStats{Rows: 4, Loaded: 4}, stats)

	tests := []struct {
		wantType     model.WindowType
		wantMaterial model.FrameMaterial
		wantFrame    string
	}{
		{model.WindowSliding, model.MaterialFiberglass, "Fiberglass"},
		{model.WindowDoubleHung, model.MaterialVinyl, "Vinyl"},
		{model.WindowCasement, model.MaterialAluminum, "Aluminum"},
		{"Bay", "", "Douglas Fir"},
	}
	for i, tt := range tests {
		p := products[i]
		assert.Equal(t, tt.wantType, p.WindowType, p.Brand)
		assert.Equal(t, tt.wantMaterial, p.Material, p.Brand)
		assert.Equal(t, tt.wantFrame, p.FrameLabel(), p.Brand)
	}
	assert.Equal(t, []model.ExtraField{{Name: model.ExtraMaterial, Value: "Douglas Fir"}}, products[3].Extra)
}

func TestParse_UnbalancedQuoteDropsOnlyItsRow(t *testing.T) {
	input := "brand,windowType,priceRangeLow,features\n" +
		"Milgard,Sliding,600,\"Low-E coating\n" +
		"Pella,Casement,450,Low-E glass\n" +
		"Marvin,Picture,1200,\"Triple pane, Wood interior\"\n"

	products, stats, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, ParseStats{Rows: 3, Loaded: 2, Dropped: 1}, stats)
	require.Len(t, products, 2)
	assert.Equal(t, "Pella", products[0].Brand)
	assert.Equal(t, "Low-E glass", products[0].Features)
	assert.Equal(t, "Marvin", products[1].Brand)
	assert.Equal(t, "Triple pane, Wood interior", products[1].Features)
}

func TestParse_StylesColumn(t *testing.T) {
	input := "Brand,Series,Model,Frame,Styles,U-Factor,STC,Warranty,Price Range Low,Price Range High\r\n" +
		"Milgard,Ultra,C650,fiberglass,\"sliding, picture\",0.27,33,Full Lifetime,700,1000\r\n" +
		"Pella,Lifestyle,,Wood,Casement,0.25,30,20 years,900,1500\r\n"

	products, stats, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, ParseStats{Rows: 2, Loaded: 2}, stats)

	milgard := products[0]
	assert.Equal(t, model.WindowSliding, milgard.WindowType)
	assert.Equal(t, []model.WindowType{model.WindowSliding, model.WindowPicture}, milgard.Types())
	assert.Equal(t, "Sliding/Picture", milgard.TypeLabel())
	assert.Equal(t, model.MaterialFiberglass, milgard.Material)
	assert.Equal(t, 700, milgard.PriceRangeLow)
	assert.Zero(t, milgard.WarrantyYears)
	assert.True(t, milgard.HasFeature(model.FeatureWarranty))

	pella := products[1]
	assert.Equal(t, []model.WindowType{model.WindowCasement}, pella.Types())
	assert.Nil(t, pella.Styles)
	assert.Equal(t, 20, pella.WarrantyYears)
}

func TestParse_TypeColumnsMerge(t *testing.T) {
	input := "brand,windowType,styles,priceRangeLow\n" +
		"Milgard,Sliding,\"Picture, sliding\",600\n"

	products, _, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, []model.WindowType{model.WindowSliding, model.WindowPicture}, products[0].Types())
}
