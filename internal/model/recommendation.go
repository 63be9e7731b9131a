package model

// ReputationTier classifies a manufacturer's market position.
type ReputationTier string

// Reputation tiers.
const (
	ReputationValue   ReputationTier = "Value"
	ReputationPremium ReputationTier = "Premium"
	ReputationLuxury  ReputationTier = "Luxury"
)

// Manufacturer is static metadata about a window brand.
type Manufacturer struct {
	Name            string
	Reputation      ReputationTier
	Specialty       string
	CustomerService float64
	Founded         int
}

// PricingResult is the estimated cost of one window, installed.
// Total is always Window + Installation.
type PricingResult struct {
	Window       int
	Installation int
	Total        int
}

// InstallRequirements describes what installing in a home of a given age involves.
type InstallRequirements struct {
	Method    string
	Timeframe string
	Permits   string
}

// ScoreBreakdown records how much each independent signal contributed.
type ScoreBreakdown struct {
	TypeMatch   int
	Budget      int
	Climate     int
	Energy      int
	Durability  int
	Maintenance int
	Cost        int
	Reputation  int
}

// Total sums all signal contributions.
func (b ScoreBreakdown) Total() int {
	return b.TypeMatch + b.Budget + b.Climate + b.Energy + b.Durability + b.Maintenance + b.Cost + b.Reputation
}

// Recommendation is a scored product with its justification.
// Recommendations are built fresh on every scoring pass.
type Recommendation struct {
	Manufacturer *Manufacturer
	Reasons      []string
	Product      Product
	Install      InstallRequirements
	Pricing      PricingResult
	Breakdown    ScoreBreakdown
	Score        int
}
