package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"suitegen.dev/pkg/suitegen/internal/domain"
)

// validateCmd represents the validate command.
var validateCmd = newValidateCmd()

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <suite>...",
		Short: "Validate suite files",
		Long:  validateLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Validate(context.Background(), domain.ValidateArgs{
				Paths:   parsePaths(args),
				Threads: viper.GetInt(parallelFlagName),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
