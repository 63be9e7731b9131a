// Package catalog loads the window product catalog from delimited text.
package catalog

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/Veraticus/windowwise/internal/model"
)

// ErrNoHeader is returned when the source has no header row.
var ErrNoHeader = errors.New("catalog has no header row")

// ParseStats summarizes a parse.
type ParseStats struct {
	Rows    int
	Loaded  int
	Dropped int
}

// ErrUnbalancedQuote marks a row whose quotes do not pair up. Rows are
// read one line at a time, so such a row is dropped on its own.
var ErrUnbalancedQuote = errors.New("unbalanced quote")

// maxLine bounds a single catalog line.
const maxLine = 1 << 20

// column assigns a raw cell value to a product field.
type column func(p *model.Product, value string)

// columns is keyed by header name lowercased with spaces, dashes and
// underscores removed, so "U-Factor" and "ufactor" are the same column.
var columns = map[string]column{
	"id":              func(p *model.Product, v string) { p.ID = parseInt(v) },
	"brand":           func(p *model.Product, v string) { p.Brand = v },
	"model":           func(p *model.Product, v string) { p.Model = v },
	"series":          func(p *model.Product, v string) { p.Series = v },
	"windowtype":      setTypes,
	"style":           setTypes,
	"styles":          setTypes,
	"material":        setMaterial,
	"frame":           setMaterial,
	"glasstype":       func(p *model.Product, v string) { p.GlassType = v },
	"pricerangelow":   func(p *model.Product, v string) { p.PriceRangeLow = parseInt(v) },
	"pricerangehigh":  func(p *model.Product, v string) { p.PriceRangeHigh = parseInt(v) },
	"energyrating":    func(p *model.Product, v string) { p.EnergyRating = v },
	"ufactor":         func(p *model.Product, v string) { p.UFactor = parseFloat(v) },
	"shgc":            func(p *model.Product, v string) { p.SHGC = parseFloat(v) },
	"stc":             func(p *model.Product, v string) { p.STC = parseInt(v) },
	"warrantyyears":   func(p *model.Product, v string) { p.WarrantyYears = parseInt(v) },
	"warranty":        setWarranty,
	"features":        func(p *model.Product, v string) { p.Features = joinFeatures(p.Features, v) },
	"popularityscore": func(p *model.Product, v string) { p.PopularityScore = parseInt(v) },
	"customerrating":  func(p *model.Product, v string) { p.CustomerRating = parseFloat(v) },
}

func columnKey(name string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(name))
}

// setTypes accepts one style or a comma-separated list of them. A catalog
// with both a windowType and a Styles column gets the union, in column order.
func setTypes(p *model.Product, v string) {
	types := p.Types()
	for _, t := range model.ParseWindowTypes(v) {
		if !slices.Contains(types, t) {
			types = append(types, t)
		}
	}
	p.SetTypes(types)
}

// setMaterial keeps an unrecognized material as an extra field.
func setMaterial(p *model.Product, v string) {
	if v == "" {
		return
	}
	if m, ok := model.ParseFrameMaterial(v); ok {
		p.Material = m
		return
	}
	p.Extra = append(p.Extra, model.ExtraField{Name: model.ExtraMaterial, Value: v})
}

// setWarranty reads a free-text warranty such as "20 years" or "Lifetime".
func setWarranty(p *model.Product, v string) {
	p.WarrantyYears = parseInt(v)
	if strings.Contains(strings.ToLower(v), "life") {
		p.Features = joinFeatures(p.Features, "Lifetime warranty")
	}
}

func joinFeatures(have, more string) string {
	switch {
	case more == "":
		return have
	case have == "":
		return more
	}
	return have + ", " + more
}

// Parse reads a header line followed by one product per line. Numeric
// cells that do not parse become zero. Rows missing a brand, a window type
// or a positive low price, and rows whose quotes do not balance, are dropped
// and counted in the returned stats.
func Parse(r io.Reader) ([]model.Product, ParseStats, error) {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		header   []string
		products []model.Product
		stats    ParseStats
	)
	for lines.Scan() {
		line := strings.TrimSuffix(lines.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if header == nil {
			fields, err := splitLine(strings.TrimPrefix(line, "\ufeff"))
			if err != nil {
				return nil, stats, fmt.Errorf("failed to read header: %w", err)
			}
			for i := range fields {
				fields[i] = cleanCell(fields[i])
			}
			header = fields
			continue
		}

		record, err := splitLine(line)
		if err == nil && blank(record) {
			continue
		}
		stats.Rows++
		if err != nil {
			stats.Dropped++
			continue
		}
		p := productFromRecord(header, record)
		if p.Validate() != nil {
			stats.Dropped++
			continue
		}
		products = append(products, p)
	}
	if err := lines.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to read row %d: %w", stats.Rows+1, err)
	}
	if header == nil {
		return nil, ParseStats{}, ErrNoHeader
	}
	stats.Loaded = len(products)

	return products, stats, nil
}

// splitLine parses one line of comma-separated cells. Commas inside double
// quotes do not split.
func splitLine(line string) ([]string, error) {
	if strings.Count(line, `"`)%2 != 0 {
		return nil, ErrUnbalancedQuote
	}
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	return reader.Read()
}

func productFromRecord(header, record []string) model.Product {
	var p model.Product
	for i, name := range header {
		value := ""
		if i < len(record) {
			value = cleanCell(record[i])
		}
		if set, ok := columns[columnKey(name)]; ok {
			set(&p, value)
			continue
		}
		if name != "" {
			p.Extra = append(p.Extra, model.ExtraField{Name: name, Value: value})
		}
	}
	return p
}

func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.TrimSpace(s)
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// parseInt accepts a leading integer the way a lenient spreadsheet export
// would ("1100", "1100.00", "20 years"). Anything else is zero.
func parseInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || end == 0 && (s[end] == '-' || s[end] == '+')) {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
