package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/windowwise/internal/assistant"
	"github.com/Veraticus/windowwise/internal/cli"
)

func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask a general question about windows",
		Long: `Answer a free-text question about window costs, energy efficiency or
frame materials. Answers are general guidance and do not affect
recommendations.`,
		Example: `  windowwise ask how much do windows cost
  windowwise ask "which material lasts longest?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			_, err := fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(cli.ChatIcon+" "+question, assistant.Reply(question)))
			return err
		},
	}
}
