// Package cmd provides the root command and CLI setup for suitegen.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"suitegen.dev/pkg/suitegen/internal/adapter"
	"suitegen.dev/pkg/suitegen/internal/controller"
	"suitegen.dev/pkg/suitegen/internal/domain"
	m "suitegen.dev/pkg/suitegen/internal/model"
)

// Process exit codes.
const (
	exitSuccess      = 0
	exitRuntimeError = 1
	exitSuiteError   = 2
)

var fsAdapter adapter.SuiteFSAdapter
var suiteStore adapter.SuiteStore
var workflow domain.Workflow
var ui controller.UI

// outputDirFlag is a root-level flag shared by commands that write suites.
var outputDirFlag string

// parallelFlag bounds the number of files processed concurrently.
var parallelFlag int

// verboseFlag forces debug logging.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSuiteFSAdapter()
	suiteStore = adapter.NewSuiteStore(fsAdapter)
	workflow = domain.NewWorkflow(fsAdapter, suiteStore, ui)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...                   recursively scan current directory
  - buildscripts/suites     scan one directory
  - a.yml b.yml             individual suite files`

const rootLongDescription = `Suitegen reads resmoke suite configuration files and derives new suites
from them: run only a given list of tests, exclude more tests, or split a
suite into balanced generated sub-suites.`

const listLongDescription = `List suite configuration files (*.yml, *.yaml) with their test kind and
test root. Files that fail to parse are listed with their error.

` + pathPatternsHelp

const validateLongDescription = `Validate suite configuration files against the suite schema and the
typed suite model. Exits with code 2 if any file is invalid.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "suitegen",
		Short:         "Resmoke suite configuration generator",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a root command with its flags, without subcommands.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for generated suites",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(parallelFlagName), "number of suite files processed in parallel")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(parallelFlagName), parallelFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		rootCmd.PrintErrln("Error:", err)
	}

	if code := exitCode(err); code != exitSuccess {
		os.Exit(code)
	}
}

// exitCode maps an error to the process exit code. Invalid suite input
// exits with 2, any other failure with 1.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}

	var parseErr *m.ParseError
	if errors.As(err, &parseErr) || errors.Is(err, domain.ErrValidationFailed) {
		return exitSuiteError
	}

	return exitRuntimeError
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
