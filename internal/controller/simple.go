package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	m "suitegen.dev/pkg/suitegen/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySuite prints a field table for one suite.
func (s *SimpleUI) DisplaySuite(ctx context.Context, path m.Path, config *m.SuiteConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if config == nil {
		return fmt.Errorf("no suite config for %s", path)
	}

	s.printf("%s", renderSuiteTable(path, config))

	return nil
}

// DisplayDocument prints text as-is, preceded by a comment line naming it.
func (s *SimpleUI) DisplayDocument(ctx context.Context, title string, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if title != "" {
		s.printf("# %s\n", title)
	}

	s.printf("%s", ensureNewline(text))

	return nil
}

// DisplayDiff prints a unified diff.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff == "" {
		s.printf("no changes\n")
		return nil
	}

	s.printf("%s", ensureNewline(diff))

	return nil
}

// DisplaySuiteList prints the suites table.
func (s *SimpleUI) DisplaySuiteList(ctx context.Context, entries []m.SuiteEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderSuiteListTable(entries))

	return nil
}

// DisplayGenerated prints the generated suites table.
func (s *SimpleUI) DisplayGenerated(ctx context.Context, suites []m.GeneratedSuite) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderGeneratedTable(suites))

	return nil
}

// DisplayValidation prints the validation table.
func (s *SimpleUI) DisplayValidation(ctx context.Context, results []m.ValidationResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderValidationTable(results))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func ensureNewline(text string) string {
	if text == "" || strings.HasSuffix(text, "\n") {
		return text
	}

	return text + "\n"
}
