package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/windowwise/internal/climate"
	"github.com/Veraticus/windowwise/internal/model"
)

// RenderRecommendations renders one boxed card per recommendation, headed by
// the climate zone used for scoring.
func RenderRecommendations(recs []model.Recommendation, zone climate.Zone) string {
	var b strings.Builder

	b.WriteString(FormatTitle("Your Window Recommendations"))
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render("Climate zone: " + zone.Label()))
	b.WriteString("\n\n")

	if len(recs) == 0 {
		b.WriteString(FormatWarning("No windows match your selections. Try adding more window types."))
		b.WriteString("\n")
		return b.String()
	}

	for i, rec := range recs {
		b.WriteString(RenderCard(i+1, rec))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderCard renders a single recommendation.
func RenderCard(rank int, rec model.Recommendation) string {
	p := rec.Product
	title := fmt.Sprintf("#%d %s %s", rank, p.Brand, strings.TrimSpace(p.Series+" "+p.Model))

	var lines []string
	lines = append(lines,
		fmt.Sprintf("%s  %s", ScoreStyle.Render(fmt.Sprintf("Score %d", rec.Score)), SubtleStyle.Render(p.TypeLabel()+" · "+p.FrameLabel())),
		"",
		fmt.Sprintf("Window %s + Installation %s = %s per window",
			dollars(rec.Pricing.Window), dollars(rec.Pricing.Installation), BoldStyle.Render(dollars(rec.Pricing.Total))),
	)

	if specs := specLine(p); specs != "" {
		lines = append(lines, SubtleStyle.Render(specs))
	}

	if rec.Install.Method != "" {
		lines = append(lines, SubtleStyle.Render(fmt.Sprintf("Install: %s, %s, %s",
			rec.Install.Method, rec.Install.Timeframe, rec.Install.Permits)))
	}

	if len(rec.Reasons) > 0 {
		lines = append(lines, "")
		for _, r := range rec.Reasons {
			lines = append(lines, successStyle.Render(SuccessIcon)+" "+r)
		}
	}

	return RenderBox(title, strings.Join(lines, "\n"))
}

func specLine(p model.Product) string {
	var parts []string
	if p.UFactor > 0 {
		parts = append(parts, fmt.Sprintf("U-Factor %g", p.UFactor))
	}
	if p.SHGC > 0 {
		parts = append(parts, fmt.Sprintf("SHGC %g", p.SHGC))
	}
	if p.STC > 0 {
		parts = append(parts, fmt.Sprintf("STC %d", p.STC))
	}
	if p.WarrantyYears > 0 {
		parts = append(parts, fmt.Sprintf("%d-year warranty", p.WarrantyYears))
	}
	return strings.Join(parts, " · ")
}

func dollars(n int) string {
	return fmt.Sprintf("$%d", n)
}
