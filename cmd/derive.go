package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"suitegen.dev/pkg/suitegen/internal/domain"
	m "suitegen.dev/pkg/suitegen/internal/model"
)

const (
	runFlagName         = "run"
	runFileFlagName     = "run-file"
	excludeFlagName     = "exclude"
	excludeFileFlagName = "exclude-file"
	outFlagName         = "out"
	diffFlagName        = "diff"
)

const deriveLongDescription = `Derive a new suite from an existing one.

With --run/--run-file the derived suite runs exactly the given tests: its
roots are replaced and exclude_files is dropped. With --exclude/--exclude-file
the given tests are appended to exclude_files and the roots are kept.
Exclusion takes precedence: when both are given the run list is ignored.

Test list files hold one test per line; blank lines and lines starting
with '#' are skipped.`

// deriveCmd represents the derive command.
var deriveCmd = newDeriveCmd()

type deriveFlags struct {
	run         []string
	runFile     string
	exclude     []string
	excludeFile string
	out         string
	diff        bool
}

func newDeriveCmd() *cobra.Command {
	flags := &deriveFlags{}

	cmd := &cobra.Command{
		Use:   "derive <suite>",
		Short: "Derive a suite running or excluding given tests",
		Long:  deriveLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Derive(context.Background(), flags.toArgs(cmd, m.Path(args[0])))
		},
	}

	cmd.Flags().StringArrayVarP(&flags.run, runFlagName, "r", nil, "test to run (can be repeated)")
	cmd.Flags().StringVar(&flags.runFile, runFileFlagName, "", "file listing the tests to run")
	cmd.Flags().StringArrayVarP(&flags.exclude, excludeFlagName, "x", nil, "test to exclude (can be repeated)")
	cmd.Flags().StringVar(&flags.excludeFile, excludeFileFlagName, "", "file listing the tests to exclude")
	cmd.Flags().StringVar(&flags.out, outFlagName, "", "write the derived suite to this file instead of printing it")
	cmd.Flags().BoolVar(&flags.diff, diffFlagName, false, "show a unified diff between the suite and the derived suite")

	return cmd
}

// toArgs keeps unset test lists nil so that the workflow can tell them
// apart from empty ones.
func (f *deriveFlags) toArgs(cmd *cobra.Command, suite m.Path) domain.DeriveArgs {
	args := domain.DeriveArgs{
		Suite:       suite,
		RunFile:     m.Path(f.runFile),
		ExcludeFile: m.Path(f.excludeFile),
		Out:         m.Path(f.out),
		Diff:        f.diff,
	}

	if cmd.Flags().Changed(runFlagName) {
		args.RunTests = append([]string{}, f.run...)
	}

	if cmd.Flags().Changed(excludeFlagName) {
		args.ExcludeTests = append([]string{}, f.exclude...)
	}

	return args
}

func init() {
	rootCmd.AddCommand(deriveCmd)
}
