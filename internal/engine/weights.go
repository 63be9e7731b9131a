package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidWeights is returned when a weight is negative.
var ErrInvalidWeights = errors.New("invalid weights")

// Scoring thresholds. The budget bands overlap on purpose: a total of 1300
// fits both "mid" and "premium".
const (
	BudgetCeiling    = 1000
	MidFloor         = 800
	MidCeiling       = 1500
	PremiumFloor     = 1200
	CostCeiling      = 1000
	ColdUFactorMax   = 0.25
	HotSHGCMax       = 0.30
	EnergyUFactorMax = 0.25
)

// Weights are the points each independent signal contributes.
type Weights struct {
	TypeMatch   int `mapstructure:"type_match" json:"type_match"`
	Budget      int `mapstructure:"budget" json:"budget"`
	Climate     int `mapstructure:"climate" json:"climate"`
	Energy      int `mapstructure:"energy" json:"energy"`
	Durability  int `mapstructure:"durability" json:"durability"`
	Maintenance int `mapstructure:"maintenance" json:"maintenance"`
	Cost        int `mapstructure:"cost" json:"cost"`
	Luxury      int `mapstructure:"luxury" json:"luxury"`
	Premium     int `mapstructure:"premium" json:"premium"`
}

// DefaultWeights returns the standard point values.
func DefaultWeights() Weights {
	return Weights{
		TypeMatch:   50,
		Budget:      40,
		Climate:     30,
		Energy:      20,
		Durability:  15,
		Maintenance: 15,
		Cost:        15,
		Luxury:      15,
		Premium:     10,
	}
}

// Validate rejects negative weights.
func (w Weights) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"type_match", w.TypeMatch},
		{"budget", w.Budget},
		{"climate", w.Climate},
		{"energy", w.Energy},
		{"durability", w.Durability},
		{"maintenance", w.Maintenance},
		{"cost", w.Cost},
		{"luxury", w.Luxury},
		{"premium", w.Premium},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: %s is %d", ErrInvalidWeights, f.name, f.value)
		}
	}
	return nil
}
