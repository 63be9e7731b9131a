// Package engine ranks catalog products against questionnaire answers.
package engine

import (
	"log/slog"
	"sort"

	"github.com/Veraticus/windowwise/internal/climate"
	"github.com/Veraticus/windowwise/internal/model"
)

// MaxResults is the most recommendations a single pass returns.
const MaxResults = 5

// Config holds configuration options for the recommendation engine.
type Config struct {
	Weights Weights
	Limit   int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Weights: DefaultWeights(),
		Limit:   MaxResults,
	}
}

// RecommendationEngine scores and ranks products. It keeps no state between
// calls; the catalog is passed in on every pass.
type RecommendationEngine struct {
	pricer        Pricer
	manufacturers ManufacturerLookup
	install       InstallGuide
	weights       Weights
	limit         int
}

// New creates a new engine with the default configuration.
func New(pricer Pricer, manufacturers ManufacturerLookup, install InstallGuide) *RecommendationEngine {
	return NewWithConfig(pricer, manufacturers, install, DefaultConfig())
}

// NewWithConfig creates a new engine with custom configuration. A limit
// outside 1..MaxResults is treated as MaxResults.
func NewWithConfig(pricer Pricer, manufacturers ManufacturerLookup, install InstallGuide, config Config) *RecommendationEngine {
	limit := config.Limit
	if limit <= 0 || limit > MaxResults {
		limit = MaxResults
	}
	return &RecommendationEngine{
		pricer:        pricer,
		manufacturers: manufacturers,
		install:       install,
		weights:       config.Weights,
		limit:         limit,
	}
}

// Recommend filters, scores, and ranks the catalog. Products none of whose
// styles is in a non-empty desired set are never scored. Equal scores
// keep catalog order. An empty result is a normal outcome.
func (e *RecommendationEngine) Recommend(catalog []model.Product, answers model.Answers, location string) []model.Recommendation {
	if location == "" {
		location = answers.Location()
	}
	climateType := ResolveClimate(answers, location)
	age := answers.HomeAge()

	scored := make([]model.Recommendation, 0, len(catalog))
	filtered := 0
	for _, p := range catalog {
		if !passesHardFilters(answers, p) {
			filtered++
			continue
		}

		pricing := e.pricer.Price(p, location, age)
		manufacturer := e.lookupManufacturer(p.Brand)
		breakdown := e.scoreOne(p, answers, climateType, pricing, manufacturer)

		scored = append(scored, model.Recommendation{
			Product:      p,
			Score:        breakdown.Total(),
			Breakdown:    breakdown,
			Pricing:      pricing,
			Manufacturer: manufacturer,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > e.limit {
		scored = scored[:e.limit]
	}

	for i := range scored {
		rec := &scored[i]
		rec.Reasons = Explain(rec.Product, answers, rec.Pricing, rec.Manufacturer, climateType)
		if e.install != nil {
			rec.Install = e.install(age)
		}
	}

	slog.Debug("Scored catalog",
		"catalog", len(catalog),
		"filtered", filtered,
		"returned", len(scored),
		"climate", climateType)

	return scored
}

// ResolveClimate picks the climate used for scoring: a known location zone
// first, then an explicit climate answer, then mixed.
func ResolveClimate(answers model.Answers, location string) model.Climate {
	if zone := climate.Lookup(location); zone.Known {
		return zone.Climate
	}
	if c := answers.Climate(); c != "" {
		return c
	}
	return model.ClimateMixed
}

func passesHardFilters(answers model.Answers, p model.Product) bool {
	if !answers.Answered(model.QuestionWindowTypes) {
		return true
	}
	_, ok := answers.MatchWindowType(p.Types())
	return ok
}

func (e *RecommendationEngine) lookupManufacturer(brand string) *model.Manufacturer {
	if e.manufacturers == nil {
		return nil
	}
	m, ok := e.manufacturers.Lookup(brand)
	if !ok {
		return nil
	}
	return &m
}

// scoreOne computes every signal independently of the others.
func (e *RecommendationEngine) scoreOne(p model.Product, answers model.Answers, climateType model.Climate, pricing model.PricingResult, m *model.Manufacturer) model.ScoreBreakdown {
	var b model.ScoreBreakdown
	w := e.weights

	if _, ok := answers.MatchWindowType(p.Types()); ok {
		b.TypeMatch = w.TypeMatch
	}
	if InBudgetBand(answers.Budget(), pricing.Total) {
		b.Budget = w.Budget
	}
	if climateFit(climateType, p) {
		b.Climate = w.Climate
	}
	if answers.HasPriority(model.PriorityEnergy) && p.UFactor < EnergyUFactorMax {
		b.Energy = w.Energy
	}
	if answers.HasPriority(model.PriorityDurability) && p.Material == model.MaterialFiberglass {
		b.Durability = w.Durability
	}
	if answers.HasPriority(model.PriorityMaintenance) && p.Material == model.MaterialVinyl {
		b.Maintenance = w.Maintenance
	}
	if answers.HasPriority(model.PriorityCost) && pricing.Total < CostCeiling {
		b.Cost = w.Cost
	}
	if m != nil {
		switch m.Reputation {
		case model.ReputationLuxury:
			b.Reputation = w.Luxury
		case model.ReputationPremium:
			b.Reputation = w.Premium
		}
	}

	return b
}

// InBudgetBand reports whether total falls in the band for tier.
func InBudgetBand(tier model.BudgetTier, total int) bool {
	switch tier {
	case model.BudgetLow:
		return total < BudgetCeiling
	case model.BudgetMid:
		return total >= MidFloor && total <= MidCeiling
	case model.BudgetPremium:
		return total > PremiumFloor
	}
	return false
}

func climateFit(c model.Climate, p model.Product) bool {
	switch c {
	case model.ClimateCold:
		return p.UFactor < ColdUFactorMax
	case model.ClimateHot:
		return p.SHGC < HotSHGCMax
	}
	return false
}
