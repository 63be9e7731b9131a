package catalog

import (
	"strings"
	"unicode"

	"github.com/Veraticus/windowwise/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var manufacturers = []model.Manufacturer{
	{Name: "Andersen", Reputation: model.ReputationPremium, CustomerService: 4.6, Founded: 1903, Specialty: "Fibrex composite technology"},
	{Name: "Pella", Reputation: model.ReputationPremium, CustomerService: 4.4, Founded: 1925, Specialty: "Design innovation"},
	{Name: "Marvin", Reputation: model.ReputationLuxury, CustomerService: 4.7, Founded: 1912, Specialty: "Custom luxury windows"},
	{Name: "Milgard", Reputation: model.ReputationValue, CustomerService: 4.2, Founded: 1958, Specialty: "West Coast expertise"},
	{Name: "JELD-WEN", Reputation: model.ReputationValue, CustomerService: 4.1, Founded: 1960, Specialty: "Broad product range"},
}

// Directory looks up manufacturer metadata by brand name. Lookups ignore
// case, accents, and surrounding whitespace, so "jeld-wen" and "JELD-WEN"
// resolve to the same entry. A Directory is read-only after construction.
type Directory struct {
	byKey map[string]model.Manufacturer
	order []string
}

// NewDirectory builds a directory from the given entries.
func NewDirectory(entries []model.Manufacturer) *Directory {
	d := &Directory{byKey: make(map[string]model.Manufacturer, len(entries))}
	for _, m := range entries {
		key := BrandKey(m.Name)
		if _, dup := d.byKey[key]; !dup {
			d.order = append(d.order, key)
		}
		d.byKey[key] = m
	}
	return d
}

// Manufacturers returns the built-in manufacturer directory.
func Manufacturers() *Directory {
	return NewDirectory(manufacturers)
}

// Lookup returns the manufacturer for brand.
func (d *Directory) Lookup(brand string) (model.Manufacturer, bool) {
	if d == nil {
		return model.Manufacturer{}, false
	}
	m, ok := d.byKey[BrandKey(brand)]
	return m, ok
}

// All lists the entries in insertion order.
func (d *Directory) All() []model.Manufacturer {
	out := make([]model.Manufacturer, 0, len(d.order))
	for _, k := range d.order {
		out = append(out, d.byKey[k])
	}
	return out
}

// BrandKey normalizes a brand name for comparison.
func BrandKey(brand string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, brand)
	if err != nil {
		result = brand
	}
	return cases.Fold().String(strings.Join(strings.Fields(result), " "))
}
