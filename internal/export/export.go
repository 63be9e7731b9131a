// Package export flattens recommendations into the comparison table used by
// the CSV, terminal and Sheets surfaces.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Veraticus/windowwise/internal/model"
)

// Header is the fixed column order of every comparison export.
var Header = []string{
	"Rank",
	"Brand",
	"Series",
	"Model",
	"Frame",
	"Type",
	"U-Factor",
	"SHGC",
	"STC",
	"Warranty",
	"Window Cost",
	"Installation",
	"Total",
	"Score",
	"Reasons",
}

// ReasonSeparator joins reasons into a single cell.
const ReasonSeparator = "; "

// Rows flattens recommendations into Header-ordered rows, ranked from 1.
func Rows(recs []model.Recommendation) [][]string {
	rows := make([][]string, 0, len(recs))
	for i, rec := range recs {
		rows = append(rows, Row(i+1, rec))
	}
	return rows
}

// Row flattens a single recommendation.
func Row(rank int, rec model.Recommendation) []string {
	p := rec.Product
	return []string{
		strconv.Itoa(rank),
		p.Brand,
		p.Series,
		p.Model,
		p.FrameLabel(),
		p.TypeLabel(),
		formatRating(p.UFactor),
		formatRating(p.SHGC),
		formatInt(p.STC),
		formatWarranty(p.WarrantyYears),
		formatDollars(rec.Pricing.Window),
		formatDollars(rec.Pricing.Installation),
		formatDollars(rec.Pricing.Total),
		strconv.Itoa(rec.Score),
		strings.Join(rec.Reasons, ReasonSeparator),
	}
}

// FilterRows keeps the rows where any cell contains query, ignoring case.
// Ranks are left as they were so a filtered table still shows overall
// position. A blank query keeps every row.
func FilterRows(rows [][]string, query string) [][]string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}
	kept := make([][]string, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(strings.Join(row, "\x00")), query) {
			kept = append(kept, row)
		}
	}
	return kept
}

// WriteCSV writes the header and one row per recommendation.
func WriteCSV(w io.Writer, recs []model.Recommendation) error {
	return WriteRows(w, Rows(recs))
}

// WriteRows writes the header and rows already flattened by Rows.
func WriteRows(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// tableColumns are the Header columns shown in the terminal. Reasons are
// rendered separately by the card view.
var tableColumns = []int{0, 1, 2, 4, 5, 6, 8, 9, 12, 13}

// RenderTable renders a bordered comparison table for the terminal.
func RenderTable(recs []model.Recommendation) string {
	return RenderRows(Rows(recs))
}

// RenderRows renders rows already flattened by Rows.
func RenderRows(rows [][]string) string {
	headers := make([]string, 0, len(tableColumns))
	for _, c := range tableColumns {
		headers = append(headers, Header[c])
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, row := range rows {
		cells := make([]string, 0, len(tableColumns))
		for _, c := range tableColumns {
			cells = append(cells, row[c])
		}
		t.Row(cells...)
	}

	return t.Render()
}

func formatRating(f float64) string {
	if f == 0 {
		return "-"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatInt(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}

func formatWarranty(years int) string {
	if years == 0 {
		return "-"
	}
	return fmt.Sprintf("%d yr", years)
}

func formatDollars(n int) string {
	return "$" + strconv.Itoa(n)
}
