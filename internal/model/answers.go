package model

import "strings"

// QuestionID identifies a questionnaire question.
type QuestionID string

// Question identifiers.
const (
	QuestionLocation    QuestionID = "location"
	QuestionBudget      QuestionID = "budget"
	QuestionPriority    QuestionID = "priority"
	QuestionWindowTypes QuestionID = "windowTypes"
	QuestionHomeAge     QuestionID = "homeAge"
	QuestionClimate     QuestionID = "climate"
)

// BudgetTier is the per-window budget range the user picked.
type BudgetTier string

// Budget tiers.
const (
	BudgetLow     BudgetTier = "budget"
	BudgetMid     BudgetTier = "mid"
	BudgetPremium BudgetTier = "premium"
)

// HomeAge is the age bracket of the house.
type HomeAge string

// Home age brackets, youngest first.
const (
	HomeAgeNew      HomeAge = "new"
	HomeAgeMedium   HomeAge = "medium"
	HomeAgeOld      HomeAge = "old"
	HomeAgeHistoric HomeAge = "historic"
)

// Climate is the coarse climate descriptor that drives efficiency bonuses.
type Climate string

// Climate descriptors.
const (
	ClimateCold  Climate = "cold"
	ClimateHot   Climate = "hot"
	ClimateMixed Climate = "mixed"
)

// Priority is something the user cares about most.
type Priority string

// Priorities.
const (
	PriorityEnergy      Priority = "energy"
	PriorityDurability  Priority = "durability"
	PriorityMaintenance Priority = "maintenance"
	PriorityCost        Priority = "cost"
)

// ParseBudgetTier validates a budget tier string.
func ParseBudgetTier(s string) (BudgetTier, bool) {
	switch t := BudgetTier(strings.ToLower(strings.TrimSpace(s))); t {
	case BudgetLow, BudgetMid, BudgetPremium:
		return t, true
	}
	return "", false
}

// ParseHomeAge validates a home age bracket string.
func ParseHomeAge(s string) (HomeAge, bool) {
	switch a := HomeAge(strings.ToLower(strings.TrimSpace(s))); a {
	case HomeAgeNew, HomeAgeMedium, HomeAgeOld, HomeAgeHistoric:
		return a, true
	}
	return "", false
}

// ParseClimate validates a climate string.
func ParseClimate(s string) (Climate, bool) {
	switch c := Climate(strings.ToLower(strings.TrimSpace(s))); c {
	case ClimateCold, ClimateHot, ClimateMixed:
		return c, true
	}
	return "", false
}

// ParsePriority validates a priority string.
func ParsePriority(s string) (Priority, bool) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityEnergy, PriorityDurability, PriorityMaintenance, PriorityCost:
		return p, true
	}
	return "", false
}

// Answers maps a question to the values the user picked. Single-select
// questions hold at most one value, multi-select questions hold a set in
// selection order. A missing key means "no preference".
//
// The zero value is usable for reads; use NewAnswers before writing.
type Answers map[QuestionID][]string

// NewAnswers returns an empty answer set.
func NewAnswers() Answers {
	return make(Answers)
}

// Set stores a single-select answer. An empty value clears the question.
func (a Answers) Set(id QuestionID, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		delete(a, id)
		return
	}
	a[id] = []string{value}
}

// Toggle adds value to a multi-select answer, or removes it if already selected.
func (a Answers) Toggle(id QuestionID, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	current := a[id]
	for i, v := range current {
		if v == value {
			next := make([]string, 0, len(current)-1)
			next = append(next, current[:i]...)
			next = append(next, current[i+1:]...)
			if len(next) == 0 {
				delete(a, id)
				return
			}
			a[id] = next
			return
		}
	}
	next := make([]string, 0, len(current)+1)
	next = append(next, current...)
	a[id] = append(next, value)
}

// Value returns the single value stored for id, or "" when unanswered.
func (a Answers) Value(id QuestionID) string {
	if vs := a[id]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Values returns a copy of the values stored for id.
func (a Answers) Values(id QuestionID) []string {
	vs := a[id]
	if len(vs) == 0 {
		return nil
	}
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}

// Has reports whether value is among the answers for id.
func (a Answers) Has(id QuestionID, value string) bool {
	for _, v := range a[id] {
		if v == value {
			return true
		}
	}
	return false
}

// Answered reports whether id has at least one value.
func (a Answers) Answered(id QuestionID) bool {
	return len(a[id]) > 0
}

// Clone returns a deep copy.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, vs := range a {
		cp := make([]string, len(vs))
		copy(cp, vs)
		out[k] = cp
	}
	return out
}

// Location returns the free-text "City, REGION" answer.
func (a Answers) Location() string {
	return a.Value(QuestionLocation)
}

// Budget returns the chosen budget tier, or "" when missing or unrecognized.
func (a Answers) Budget() BudgetTier {
	t, _ := ParseBudgetTier(a.Value(QuestionBudget))
	return t
}

// HomeAge returns the chosen home age bracket, or "" when missing or unrecognized.
func (a Answers) HomeAge() HomeAge {
	h, _ := ParseHomeAge(a.Value(QuestionHomeAge))
	return h
}

// Climate returns the stored climate, or "" when missing or unrecognized.
func (a Answers) Climate() Climate {
	c, _ := ParseClimate(a.Value(QuestionClimate))
	return c
}

// Priorities returns the recognized priorities in selection order.
func (a Answers) Priorities() []Priority {
	var out []Priority
	for _, v := range a[QuestionPriority] {
		if p, ok := ParsePriority(v); ok {
			out = append(out, p)
		}
	}
	return out
}

// HasPriority reports whether p was selected.
func (a Answers) HasPriority(p Priority) bool {
	for _, got := range a.Priorities() {
		if got == p {
			return true
		}
	}
	return false
}

// WindowTypes returns the desired window styles in selection order.
func (a Answers) WindowTypes() []WindowType {
	var out []WindowType
	for _, v := range a[QuestionWindowTypes] {
		out = append(out, WindowType(v))
	}
	return out
}

// WantsWindowType reports whether t was among the desired styles.
func (a Answers) WantsWindowType(t WindowType) bool {
	return a.Has(QuestionWindowTypes, string(t))
}

// MatchWindowType returns the first of types that was among the desired
// styles.
func (a Answers) MatchWindowType(types []WindowType) (WindowType, bool) {
	for _, t := range types {
		if a.WantsWindowType(t) {
			return t, true
		}
	}
	return "", false
}
