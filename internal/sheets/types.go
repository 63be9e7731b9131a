package sheets

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/windowwise/internal/export"
	"github.com/Veraticus/windowwise/internal/model"
)

// ComparisonRow is one ranked product as it appears on the sheet. Money and
// ratings stay numeric so Sheets can format and sort them.
type ComparisonRow struct {
	Brand        string
	Series       string
	Model        string
	Frame        string
	Type         string
	Reasons      string
	WindowCost   decimal.Decimal
	Installation decimal.Decimal
	Total        decimal.Decimal
	UFactor      float64
	SHGC         float64
	Rank         int
	STC          int
	Warranty     int
	Score        int
}

// NewComparisonRows converts ranked recommendations.
func NewComparisonRows(recs []model.Recommendation) []ComparisonRow {
	rows := make([]ComparisonRow, 0, len(recs))
	for i, rec := range recs {
		p := rec.Product
		rows = append(rows, ComparisonRow{
			Rank:         i + 1,
			Brand:        p.Brand,
			Series:       p.Series,
			Model:        p.Model,
			Frame:        p.FrameLabel(),
			Type:         p.TypeLabel(),
			UFactor:      p.UFactor,
			SHGC:         p.SHGC,
			STC:          p.STC,
			Warranty:     p.WarrantyYears,
			WindowCost:   decimal.NewFromInt(int64(rec.Pricing.Window)),
			Installation: decimal.NewFromInt(int64(rec.Pricing.Installation)),
			Total:        decimal.NewFromInt(int64(rec.Pricing.Total)),
			Score:        rec.Score,
			Reasons:      strings.Join(rec.Reasons, export.ReasonSeparator),
		})
	}
	return rows
}

// Values returns the row in export.Header column order.
func (r ComparisonRow) Values() []any {
	return []any{
		r.Rank,
		r.Brand,
		r.Series,
		r.Model,
		r.Frame,
		r.Type,
		optionalFloat(r.UFactor),
		optionalFloat(r.SHGC),
		optionalInt(r.STC),
		optionalInt(r.Warranty),
		r.WindowCost.InexactFloat64(),
		r.Installation.InexactFloat64(),
		r.Total.InexactFloat64(),
		r.Score,
		r.Reasons,
	}
}

func optionalFloat(f float64) any {
	if f == 0 {
		return ""
	}
	return f
}

func optionalInt(n int) any {
	if n == 0 {
		return ""
	}
	return n
}
