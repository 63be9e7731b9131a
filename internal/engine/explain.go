package engine

import (
	"fmt"
	"strconv"

	"github.com/Veraticus/windowwise/internal/model"
)

// MaxReasons caps the justification list.
const MaxReasons = 4

// Explain builds up to MaxReasons human-readable justifications, most
// important first: cost, type match, brand, energy, then the remaining
// priority and climate statements, then notable catalog features. It reads the same inputs as scoring and
// has no effect on ranking.
func Explain(p model.Product, answers model.Answers, pricing model.PricingResult, m *model.Manufacturer, climateType model.Climate) []string {
	reasons := make([]string, 0, MaxReasons)
	add := func(s string) {
		if len(reasons) < MaxReasons {
			reasons = append(reasons, s)
		}
	}

	add(costReason(answers.Budget(), pricing.Total))

	if t, ok := answers.MatchWindowType(p.Types()); ok {
		add(fmt.Sprintf("Perfect match for your %s selection", t))
	}
	if m != nil {
		add(fmt.Sprintf("%s %s brand (%s/5 rating)", m.Reputation, p.Brand, formatNumber(m.CustomerService)))
	}
	if answers.HasPriority(model.PriorityEnergy) && p.UFactor < EnergyUFactorMax {
		add(fmt.Sprintf("Excellent energy efficiency with U-Factor of %s", formatNumber(p.UFactor)))
	}
	if answers.HasPriority(model.PriorityDurability) && p.Material == model.MaterialFiberglass {
		add("Fiberglass offers superior durability and longevity")
	}
	if answers.HasPriority(model.PriorityMaintenance) && p.Material == model.MaterialVinyl {
		add("Vinyl frames need almost no upkeep")
	}
	if answers.HasPriority(model.PriorityCost) && pricing.Total < CostCeiling {
		add(fmt.Sprintf("Keeps upfront cost under $%d", CostCeiling))
	}
	switch {
	case climateType == model.ClimateCold && p.UFactor < ColdUFactorMax:
		add(fmt.Sprintf("Insulates well for cold winters (U-Factor %s)", formatNumber(p.UFactor)))
	case climateType == model.ClimateHot && p.SHGC < HotSHGCMax:
		add(fmt.Sprintf("Blocks solar heat in hot summers (SHGC %s)", formatNumber(p.SHGC)))
	}

	for _, f := range featureStatements {
		if p.HasFeature(f.tag) {
			add(f.statement(p))
		}
	}

	return reasons
}

// featureStatements describe catalog features no priority already covers.
var featureStatements = []struct {
	tag       model.FeatureTag
	statement func(model.Product) string
}{
	{model.FeatureTriplePane, func(model.Product) string { return "Triple-pane glass for extra insulation" }},
	{model.FeatureSound, func(p model.Product) string {
		if p.STC > 0 {
			return fmt.Sprintf("Cuts outside noise (STC %d)", p.STC)
		}
		return "Cuts outside noise"
	}},
	{model.FeatureSecurity, func(model.Product) string { return "Security glazing or hardware" }},
	{model.FeatureWarranty, func(p model.Product) string {
		if p.WarrantyYears > 0 {
			return fmt.Sprintf("Backed by a %d-year warranty", p.WarrantyYears)
		}
		return "Backed by a lifetime warranty"
	}},
}

func costReason(tier model.BudgetTier, total int) string {
	if InBudgetBand(tier, total) {
		switch tier {
		case model.BudgetLow:
			return fmt.Sprintf("Excellent budget value at $%d total cost", total)
		case model.BudgetMid:
			return fmt.Sprintf("Great mid-range value at $%d total cost", total)
		case model.BudgetPremium:
			return fmt.Sprintf("Premium-grade investment at $%d total cost", total)
		}
	}
	return fmt.Sprintf("Total cost: $%d per window", total)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
