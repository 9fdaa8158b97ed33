package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags.
var version = "dev"

// NewRootCmd creates the top-level `formpatch` command.
func NewRootCmd() *cobra.Command {
	var (
		verbose bool
		logger  *zap.Logger
	)

	root := &cobra.Command{
		Use:   "formpatch",
		Short: "Add aria-pressed to the recipe form's meal slot buttons",
		Long: `formpatch rewrites client/src/components/RecipeForm.tsx so that each meal
slot toggle button exposes its pressed state through aria-pressed.

It looks for the button's className expression, inserts the attribute after
every occurrence and prints "Updated successfully". When the expression is not
present the file is left untouched and "String not found" is printed.

Run it from the project root.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(verbose)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd.OutOrStdout(), logger)
		},
	}

	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log file access details to stderr")

	return root
}

// Execute runs the root command.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
