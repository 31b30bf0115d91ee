// Package controller provides output adapters for displaying suites and workflow results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "suitegen.dev/pkg/suitegen/internal/model"
)

// UI defines how workflow results are shown to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplaySuite shows a summary of one suite configuration.
	DisplaySuite(ctx context.Context, path m.Path, config *m.SuiteConfig) error
	// DisplayDocument prints a YAML document, e.g. a derived suite.
	DisplayDocument(ctx context.Context, title string, text string) error
	// DisplayDiff prints a unified diff between two documents.
	DisplayDiff(ctx context.Context, diff string) error
	// DisplaySuiteList shows the suites found on disk, including the ones that failed to parse.
	DisplaySuiteList(ctx context.Context, entries []m.SuiteEntry) error
	// DisplayGenerated shows the suite files written by the generator.
	DisplayGenerated(ctx context.Context, suites []m.GeneratedSuite) error
	// DisplayValidation shows per-file validation outcomes.
	DisplayValidation(ctx context.Context, results []m.ValidationResult) error
}

// NewUI picks the interactive TUI for terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// terminalSize returns the size of w, or zeros when w is not a terminal.
func terminalSize(w io.Writer) (int, int) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}
