package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/windowwise/internal/cli"
	"github.com/Veraticus/windowwise/internal/common"
	"github.com/Veraticus/windowwise/internal/location"
)

func installerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "installer <zip>",
		Short: "Find window installers near a ZIP code",
		Long: `Print a map search for window installers near a US ZIP code. With --open
the search is opened in your browser.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := location.InstallerSearchURL(args[0])
			if errors.Is(err, location.ErrInvalidZIP) {
				return common.NewUserError(
					fmt.Sprintf("Invalid ZIP code %q: expected 5 digits, e.g. 98101.", args[0]),
					fmt.Errorf("%w: %w", common.ErrInvalidConfig, err))
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if open, _ := cmd.Flags().GetBool("open"); open {
				_, _ = fmt.Fprintln(out, cli.FormatInfo("Opening installer search in your browser"))
				openBrowser(url)
			}
			_, err = fmt.Fprintln(out, url)
			return err
		},
	}
	cmd.Flags().Bool("open", false, "open the search in your browser")
	return cmd
}
