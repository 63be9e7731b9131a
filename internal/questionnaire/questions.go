// Package questionnaire defines the ordered wizard questions and the session
// that walks a user through them.
package questionnaire

import (
	"github.com/Veraticus/windowwise/internal/climate"
	"github.com/Veraticus/windowwise/internal/model"
)

// Kind is how a question is answered.
type Kind string

// Question kinds.
const (
	KindLocation Kind = "location"
	KindRadio    Kind = "radio"
	KindCheckbox Kind = "checkbox"
)

// Option is one selectable answer.
type Option struct {
	Value       string
	Label       string
	Description string
}

// Question is a single wizard step.
type Question struct {
	ID          model.QuestionID
	Title       string
	Explanation string
	Kind        Kind
	Options     []Option
}

// Questions returns the wizard sequence in the order it is asked.
func Questions() []Question {
	return []Question{
		{
			ID:          model.QuestionLocation,
			Title:       "What is your location?",
			Explanation: "Location determines your climate zone and energy efficiency requirements.",
			Kind:        KindLocation,
		},
		{
			ID:          model.QuestionBudget,
			Title:       "What is your budget range per window?",
			Explanation: "Budget determines available material options and features.",
			Kind:        KindRadio,
			Options: []Option{
				{Value: string(model.BudgetLow), Label: "$300-600 (Budget-friendly)", Description: "Quality vinyl options"},
				{Value: string(model.BudgetMid), Label: "$600-1,000 (Mid-range)", Description: "Fiberglass and premium vinyl"},
				{Value: string(model.BudgetPremium), Label: "$1,000-2,000+ (Premium)", Description: "Wood and luxury options"},
			},
		},
		{
			ID:          model.QuestionPriority,
			Title:       "What are your top priorities?",
			Explanation: "Select your most important factors for window selection.",
			Kind:        KindCheckbox,
			Options: []Option{
				{Value: string(model.PriorityEnergy), Label: "Energy efficiency", Description: "Lower utility bills"},
				{Value: string(model.PriorityDurability), Label: "Long-term durability", Description: "20+ year lifespan"},
				{Value: string(model.PriorityMaintenance), Label: "Low maintenance", Description: "Minimal upkeep"},
				{Value: string(model.PriorityCost), Label: "Lowest upfront cost", Description: "Budget-conscious"},
			},
		},
		{
			ID:          model.QuestionWindowTypes,
			Title:       "What types of windows do you need?",
			Explanation: "Select all window styles you want to replace.",
			Kind:        KindCheckbox,
			Options: []Option{
				{Value: string(model.WindowDoubleHung), Label: "Double-Hung", Description: "Traditional, easy to clean"},
				{Value: string(model.WindowCasement), Label: "Casement", Description: "Maximum ventilation"},
				{Value: string(model.WindowSliding), Label: "Sliding", Description: "Simple operation"},
				{Value: string(model.WindowPicture), Label: "Picture", Description: "Maximum light"},
			},
		},
		{
			ID:          model.QuestionHomeAge,
			Title:       "How old is your home?",
			Explanation: "Home age affects installation requirements and costs.",
			Kind:        KindRadio,
			Options: []Option{
				{Value: string(model.HomeAgeNew), Label: "Less than 10 years", Description: "Good frame condition"},
				{Value: string(model.HomeAgeMedium), Label: "10-30 years", Description: "May need inspection"},
				{Value: string(model.HomeAgeOld), Label: "30+ years", Description: "Possible frame replacement"},
				{Value: string(model.HomeAgeHistoric), Label: "50+ years (historic)", Description: "Special considerations"},
			},
		},
	}
}

// CanProceed reports whether q has an acceptable answer. A location must
// resolve to a known climate zone, a checkbox needs at least one selection,
// and a radio needs a value.
func CanProceed(q Question, answers model.Answers) bool {
	switch q.Kind {
	case KindLocation:
		return climate.Lookup(answers.Location()).Known
	default:
		return answers.Answered(q.ID)
	}
}
