package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/miloscript/monify/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "monify",
		Short:   "Local-first invoicing and bank statement bookkeeping",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newLabelsCommand())

	return rootCmd
}
