package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"suitegen.dev/pkg/suitegen/internal/domain"
	m "suitegen.dev/pkg/suitegen/internal/model"
)

const (
	testsFileFlagName = "tests-file"
	nameFlagName      = "name"
)

const generateLongDescription = `Split a suite into generated sub-suites.

The tests listed in --tests-file are divided into --sub-suites balanced,
contiguous chunks. Each chunk becomes <name>_<index>.yml running exactly
those tests. Unless --no-misc is set, <name>_misc.yml is also written: it
runs the original suite with every listed test excluded.

Suites are written to the --output directory.`

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

var generateSubSuitesFlag int

func newGenerateCmd() *cobra.Command {
	var testsFile string

	var name string

	var noMisc bool

	cmd := &cobra.Command{
		Use:   "generate <suite>",
		Short: "Split a suite into generated sub-suites",
		Long:  generateLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Generate(context.Background(), domain.GenerateArgs{
				Suite:     m.Path(args[0]),
				TestsFile: m.Path(testsFile),
				Output:    m.Path(viper.GetString(outputFlagName)),
				Name:      name,
				SubSuites: viper.GetInt(subSuitesConfigKey),
				Misc:      viper.GetBool(miscConfigKey) && !noMisc,
				Threads:   viper.GetInt(parallelFlagName),
			})
		},
	}

	cmd.Flags().StringVarP(&testsFile, testsFileFlagName, "t", "", "file listing the tests to split, one per line")
	cobra.CheckErr(cmd.MarkFlagRequired(testsFileFlagName))

	cmd.Flags().IntVarP(&generateSubSuitesFlag, subSuitesFlagName, "n", defaultSubSuites, "number of sub-suites to generate")
	bindFlagToConfig(cmd.Flags().Lookup(subSuitesFlagName), subSuitesConfigKey)

	cmd.Flags().StringVar(&name, nameFlagName, "", "base name of the generated suites (default: suite file name)")
	cmd.Flags().BoolVar(&noMisc, noMiscFlagName, false, "do not write the misc suite")

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
