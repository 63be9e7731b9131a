package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidProduct is returned when a catalog record is missing a required field.
var ErrInvalidProduct = errors.New("invalid product")

// WindowType is the operating style of a window.
type WindowType string

// Window styles offered by the questionnaire.
const (
	WindowDoubleHung WindowType = "Double-Hung"
	WindowCasement   WindowType = "Casement"
	WindowSliding    WindowType = "Sliding"
	WindowPicture    WindowType = "Picture"
	WindowAwning     WindowType = "Awning"
)

// WindowTypes lists the styles the wizard asks about, in display order.
func WindowTypes() []WindowType {
	return []WindowType{WindowDoubleHung, WindowCasement, WindowSliding, WindowPicture}
}

// ParseWindowType matches s case-insensitively against the known styles,
// including Awning, which the wizard does not offer.
func ParseWindowType(s string) (WindowType, bool) {
	s = strings.TrimSpace(s)
	for _, t := range append(WindowTypes(), WindowAwning) {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

// ParseWindowTypes splits a comma-separated style list such as
// "sliding, picture". Recognized styles take their canonical spelling and
// unknown ones are kept as written. Blanks and repeats are skipped.
func ParseWindowTypes(s string) []WindowType {
	var out []WindowType
	for _, raw := range strings.Split(s, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		t, ok := ParseWindowType(raw)
		if !ok {
			t = WindowType(raw)
		}
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}

// FrameMaterial is the material a window frame is built from.
type FrameMaterial string

// Known frame materials.
const (
	MaterialVinyl      FrameMaterial = "Vinyl"
	MaterialFiberglass FrameMaterial = "Fiberglass"
	MaterialFibrex     FrameMaterial = "Fibrex"
	MaterialWood       FrameMaterial = "Wood"
	MaterialComposite  FrameMaterial = "Composite"
	MaterialAluminum   FrameMaterial = "Aluminum"
)

var materialAliases = map[string]FrameMaterial{
	"vinyl":      MaterialVinyl,
	"pvc":        MaterialVinyl,
	"upvc":       MaterialVinyl,
	"fiberglass": MaterialFiberglass,
	"fibreglass": MaterialFiberglass,
	"fibrex":     MaterialFibrex,
	"wood":       MaterialWood,
	"composite":  MaterialComposite,
	"aluminum":   MaterialAluminum,
	"aluminium":  MaterialAluminum,
}

// ParseFrameMaterial matches s case-insensitively against the known
// materials and their common spellings.
func ParseFrameMaterial(s string) (FrameMaterial, bool) {
	m, ok := materialAliases[strings.ToLower(strings.TrimSpace(s))]
	return m, ok
}

// ExtraMaterial names the extra field holding a frame material the catalog
// spelled in a way ParseFrameMaterial does not recognize.
const ExtraMaterial = "material"

// FeatureTag is a normalized product feature derived from the catalog's free-text features column.
type FeatureTag string

// Feature vocabulary.
const (
	FeatureEnergy     FeatureTag = "energy"
	FeatureSound      FeatureTag = "sound"
	FeatureWarranty   FeatureTag = "warranty"
	FeatureTriplePane FeatureTag = "triple-pane"
	FeatureAesthetic  FeatureTag = "aesthetic"
	FeatureSecurity   FeatureTag = "security"
)

// featureKeywords maps lowercase substrings of the features text to tags.
// Order matters only for the order tags are reported in.
var featureKeywords = []struct {
	tag      FeatureTag
	keywords []string
}{
	{FeatureEnergy, []string{"low-e", "energy", "argon", "krypton", "insulat"}},
	{FeatureSound, []string{"sound", "noise", "acoustic", "quiet"}},
	{FeatureWarranty, []string{"warranty", "lifetime"}},
	{FeatureTriplePane, []string{"triple"}},
	{FeatureAesthetic, []string{"color", "colour", "custom", "finish", "grille", "wood interior"}},
	{FeatureSecurity, []string{"security", "lock", "impact", "laminated"}},
}

// ExtraField is a catalog column the loader did not recognize. It is kept verbatim.
type ExtraField struct {
	Name  string
	Value string
}

// Product is one catalog entry. Products are read-only once loaded.
//
// WindowType is the primary style. Styles is set only for products sold in
// more than one style and then lists all of them, primary first.
type Product struct {
	Brand           string
	Model           string
	Series          string
	WindowType      WindowType
	Styles          []WindowType
	Material        FrameMaterial
	GlassType       string
	EnergyRating    string
	Features        string
	Extra           []ExtraField
	ID              int
	PriceRangeLow   int
	PriceRangeHigh  int
	UFactor         float64
	SHGC            float64
	STC             int
	WarrantyYears   int
	PopularityScore int
	CustomerRating  float64
}

// Validate reports whether the product may be handed to the engine.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Brand) == "" {
		return fmt.Errorf("%w: missing brand", ErrInvalidProduct)
	}
	if strings.TrimSpace(string(p.WindowType)) == "" {
		return fmt.Errorf("%w: missing window type", ErrInvalidProduct)
	}
	if p.PriceRangeLow <= 0 {
		return fmt.Errorf("%w: price range low must be positive, got %d", ErrInvalidProduct, p.PriceRangeLow)
	}
	return nil
}

// SetTypes records the styles a product comes in, the first being primary.
func (p *Product) SetTypes(types []WindowType) {
	p.WindowType, p.Styles = "", nil
	if len(types) == 0 {
		return
	}
	p.WindowType = types[0]
	if len(types) > 1 {
		p.Styles = slices.Clone(types)
	}
}

// Types returns every style the product comes in, primary first.
func (p Product) Types() []WindowType {
	if len(p.Styles) > 0 {
		return p.Styles
	}
	if p.WindowType == "" {
		return nil
	}
	return []WindowType{p.WindowType}
}

// TypeLabel joins the product's styles for display, e.g. "Sliding/Picture".
func (p Product) TypeLabel() string {
	types := p.Types()
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, "/")
}

// FrameLabel is the frame material, or the catalog's own spelling when the
// material was not recognized.
func (p Product) FrameLabel() string {
	if p.Material != "" {
		return string(p.Material)
	}
	raw, _ := p.ExtraValue(ExtraMaterial)
	return raw
}

// DisplayName returns the brand followed by the model, or the series when no model is set.
func (p Product) DisplayName() string {
	name := p.Model
	if name == "" {
		name = p.Series
	}
	if name == "" {
		return p.Brand
	}
	return p.Brand + " " + name
}

// FeatureTags derives the feature vocabulary entries present in the features text.
func (p Product) FeatureTags() []FeatureTag {
	text := strings.ToLower(p.Features)
	var tags []FeatureTag
	for _, fk := range featureKeywords {
		for _, kw := range fk.keywords {
			if strings.Contains(text, kw) {
				tags = append(tags, fk.tag)
				break
			}
		}
	}
	if p.STC >= 30 && !hasTag(tags, FeatureSound) {
		tags = append(tags, FeatureSound)
	}
	return tags
}

// HasFeature reports whether the product carries the given feature tag.
func (p Product) HasFeature(tag FeatureTag) bool {
	return hasTag(p.FeatureTags(), tag)
}

// ExtraValue returns the value of an unrecognized column.
func (p Product) ExtraValue(name string) (string, bool) {
	for _, f := range p.Extra {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

func hasTag(tags []FeatureTag, tag FeatureTag) bool {
	return slices.Contains(tags, tag)
}
