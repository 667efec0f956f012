package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madboat/madboat/internal/quiz"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "madboat %s (question bank %s)\n", version, quiz.DefaultBank().Version)
	},
}
