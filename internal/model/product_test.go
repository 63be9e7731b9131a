package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		wantErr bool
	}{
		{
			name:    "valid",
			product: Product{Brand: "Pella", WindowType: WindowCasement, PriceRangeLow: 700},
		},
		{
			name:    "missing brand",
			product: Product{WindowType: WindowCasement, PriceRangeLow: 700},
			wantErr: true,
		},
		{
			name:    "blank window type",
			product: Product{Brand: "Pella", WindowType: "  ", PriceRangeLow: 700},
			wantErr: true,
		},
		{
			name:    "zero price",
			product: Product{Brand: "Pella", WindowType: WindowCasement},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidProduct)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProduct_FeatureTags(t *testing.T) {
	p := Product{Features: "Triple pane Low-E glass, Lifetime warranty, Multi-point lock"}
	assert.Equal(t,
		[]FeatureTag{FeatureEnergy, FeatureWarranty, FeatureTriplePane, FeatureSecurity},
		p.FeatureTags())

	quiet := Product{Features: "Smooth operation", STC: 34}
	assert.True(t, quiet.HasFeature(FeatureSound))
	assert.Empty(t, Product{}.FeatureTags())
}

func TestProduct_DisplayName(t *testing.T) {
	assert.Equal(t, "Milgard Ultra Sliding", Product{Brand: "Milgard", Model: "Ultra Sliding"}.DisplayName())
	assert.Equal(t, "Pella 250 Series", Product{Brand: "Pella", Series: "250 Series"}.DisplayName())
	assert.Equal(t, "Marvin", Product{Brand: "Marvin"}.DisplayName())
}

func TestParseWindowType(t *testing.T) {
	tests := []struct {
		in     string
		want   WindowType
		wantOK bool
	}{
		{"Double-Hung", WindowDoubleHung, true},
		{" casement ", WindowCasement, true},
		{"AWNING", WindowAwning, true},
		{"bay", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseWindowType(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWindowTypes(t *testing.T) {
	assert.Equal(t, []WindowType{WindowSliding, WindowPicture, "Bay"}, ParseWindowTypes("sliding, PICTURE,,Bay, Sliding"))
	assert.Nil(t, ParseWindowTypes(" , "))
}

func TestParseFrameMaterial(t *testing.T) {
	tests := []struct {
		in     string
		want   FrameMaterial
		wantOK bool
	}{
		{"vinyl", MaterialVinyl, true},
		{" uPVC ", MaterialVinyl, true},
		{"Fibreglass", MaterialFiberglass, true},
		{"aluminium", MaterialAluminum, true},
		{"Douglas Fir", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseFrameMaterial(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProduct_SetTypes(t *testing.T) {
	var p Product
	p.SetTypes([]WindowType{WindowSliding, WindowPicture})
	assert.Equal(t, WindowSliding, p.WindowType)
	assert.Equal(t, []WindowType{WindowSliding, WindowPicture}, p.Types())
	assert.Equal(t, "Sliding/Picture", p.TypeLabel())

	p.SetTypes([]WindowType{WindowCasement})
	assert.Nil(t, p.Styles)
	assert.Equal(t, []WindowType{WindowCasement}, p.Types())

	p.SetTypes(nil)
	assert.Empty(t, p.WindowType)
	assert.Nil(t, p.Types())
}

func TestProduct_FrameLabel(t *testing.T) {
	assert.Equal(t, "Vinyl", Product{Material: MaterialVinyl}.FrameLabel())
	assert.Equal(t, "Douglas Fir", Product{Extra: []ExtraField{{Name: ExtraMaterial, Value: "Douglas Fir"}}}.FrameLabel())
	assert.Equal(t, "", Product{}.FrameLabel())
}
