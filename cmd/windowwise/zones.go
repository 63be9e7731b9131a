package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Veraticus/windowwise/internal/cli"
	"github.com/Veraticus/windowwise/internal/climate"
)

func zonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zones [location]",
		Short: "List supported regions and their climate zones",
		Long: `Print the climate zone table used for scoring. With a location argument,
show only the zone that location resolves to.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				zone := climate.Lookup(args[0])
				_, err := fmt.Fprintf(out, "%s: %s (%s)\n", args[0], zone.Label(), zone.Climate)
				return err
			}
			_, err := fmt.Fprintln(out, renderZones(climate.Zones()))
			return err
		},
	}
}

func renderZones(zones []climate.Zone) string {
	rows := make([][]string, 0, len(zones))
	for _, z := range zones {
		var needs []string
		if z.Heating {
			needs = append(needs, "heating")
		}
		if z.Cooling {
			needs = append(needs, "cooling")
		}
		rows = append(rows, []string{z.Region, z.Code, z.Description, string(z.Climate), strings.Join(needs, ", ")})
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(cli.SubtleColor)).
		Headers("Region", "Zone", "Description", "Climate", "Dominant load").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		String()
}
