package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/windowwise/internal/model"
)

func sampleRecs() []model.Recommendation {
	return []model.Recommendation{
		{
			Product: model.Product{
				Brand:         "Milgard",
				Series:        "Ultra",
				Model:         "C650",
				Material:      model.MaterialFiberglass,
				WindowType:    model.WindowSliding,
				UFactor:       0.27,
				SHGC:          0.22,
				STC:           28,
				WarrantyYears: 30,
			},
			Pricing: model.PricingResult{Window: 978, Installation: 220, Total: 1198},
			Score:   65,
			Reasons: []string{"Total cost: $1198 per window", "Perfect match for your Sliding selection"},
		},
		{
			Product: model.Product{
				Brand:      "Andersen",
				Series:     "100 Series",
				Material:   model.MaterialFibrex,
				WindowType: model.WindowCasement,
			},
			Pricing: model.PricingResult{Window: 700, Installation: 200, Total: 900},
			Score:   40,
		},
	}
}

func TestRows(t *testing.T) {
	rows := Rows(sampleRecs())
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"1", "Milgard", "Ultra", "C650", "Fiberglass", "Sliding",
		"0.27", "0.22", "28", "30 yr", "$978", "$220", "$1198", "65",
		"Total cost: $1198 per window; Perfect match for your Sliding selection",
	}, rows[0])

	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "-", rows[1][6], "missing U-Factor")
	assert.Equal(t, "-", rows[1][9], "missing warranty")
	assert.Equal(t, "", rows[1][14])
	for _, row := range rows {
		assert.Len(t, row, len(Header))
	}
}

func TestRow_StyleAndFrameLabels(t *testing.T) {
	p := model.Product{
		Brand: "Marvin",
		Extra: []model.ExtraField{{Name: model.ExtraMaterial, Value: "Douglas Fir"}},
	}
	p.SetTypes([]model.WindowType{model.WindowSliding, model.WindowPicture})

	row := Row(3, model.Recommendation{Product: p})
	assert.Equal(t, "Douglas Fir", row[4])
	assert.Equal(t, "Sliding/Picture", row[5])
}

func TestFilterRows(t *testing.T) {
	rows := Rows(sampleRecs())

	tests := []struct {
		name      string
		query     string
		wantRanks []string
	}{
		{name: "blank keeps all", query: "  ", wantRanks: []string{"1", "2"}},
		{name: "brand ignores case", query: "ANDERSEN", wantRanks: []string{"2"}},
		{name: "frame", query: "fibrex", wantRanks: []string{"2"}},
		{name: "reason text", query: "sliding selection", wantRanks: []string{"1"}},
		{name: "price", query: "$900", wantRanks: []string{"2"}},
		{name: "no match", query: "bay", wantRanks: []string{}},
		{name: "does not span cells", query: "milgardultra", wantRanks: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRows(rows, tt.query)
			ranks := make([]string, 0, len(got))
			for _, row := range got {
				ranks = append(ranks, row[0])
			}
			assert.Equal(t, tt.wantRanks, ranks)
		})
	}
}

func TestWriteRows_Filtered(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRows(&buf, FilterRows(Rows(sampleRecs()), "casement")))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"2", "Andersen"}, records[1][:2])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecs()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, Header, records[0])
	assert.Equal(t, "Milgard", records[1][1])
	assert.Equal(t, "Andersen", records[2][1])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Rank,Brand,Series,Model,Frame,Type,U-Factor,SHGC,STC,Warranty,Window Cost,Installation,Total,Score,Reasons\n", buf.String())
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(sampleRecs())
	assert.Contains(t, out, "Milgard")
	assert.Contains(t, out, "Andersen")
	assert.Contains(t, out, "$1198")
	assert.Contains(t, out, "U-Factor")
	assert.NotContains(t, out, "Perfect match", "reasons are not part of the table")
}
