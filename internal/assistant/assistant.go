// Package assistant answers free-text questions with canned guidance. It is
// informational only and never influences recommendations.
package assistant

import "strings"

// Topic is the subject a reply covers.
type Topic string

// Topics.
const (
	TopicCost     Topic = "cost"
	TopicEnergy   Topic = "energy"
	TopicMaterial Topic = "material"
	TopicDefault  Topic = "default"
)

type entry struct {
	topic    Topic
	keywords []string
	reply    string
}

// Checked in order; the first entry with a matching keyword wins.
var entries = []entry{
	{
		topic:    TopicCost,
		keywords: []string{"cost", "price"},
		reply: "Window costs vary by material:\n" +
			"• Vinyl: $300-800 + installation\n" +
			"• Fiberglass: $600-1,200 + installation\n" +
			"• Wood: $800-2,000+ + installation\n\n" +
			"Your location affects pricing due to labor costs and regulations.",
	},
	{
		topic:    TopicEnergy,
		keywords: []string{"energy"},
		reply: "Energy efficiency key factors:\n" +
			"• U-Factor: Lower is better (0.15-0.30)\n" +
			"• SHGC: Lower for hot climates\n" +
			"• Triple-pane glass: 50% more efficient\n" +
			"• Low-E coatings: 10-25% energy savings",
	},
	{
		topic:    TopicMaterial,
		keywords: []string{"material"},
		reply: "Material comparison:\n" +
			"• Fiberglass: Best durability, paintable, 50+ years\n" +
			"• Vinyl: Most affordable, low maintenance, 20-30 years\n" +
			"• Wood: Beautiful, customizable, requires maintenance\n" +
			"• Aluminum: Modern look, poor insulation",
	},
}

const defaultReply = "I can help with window costs, energy efficiency, materials, brands, and installation. What would you like to know?"

// Classify returns the topic a message is about.
func Classify(message string) Topic {
	lower := strings.ToLower(message)
	for _, e := range entries {
		for _, kw := range e.keywords {
			if strings.Contains(lower, kw) {
				return e.topic
			}
		}
	}
	return TopicDefault
}

// Reply returns the canned answer for message.
func Reply(message string) string {
	topic := Classify(message)
	for _, e := range entries {
		if e.topic == topic {
			return e.reply
		}
	}
	return defaultReply
}
