package domain

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	m "suitegen.dev/pkg/suitegen/internal/model"
)

const diffContextLines = 3

// SuiteDiff returns a unified diff of the YAML forms of two suites. It is
// empty when they serialize identically.
func SuiteDiff(from, to *m.SuiteConfig, fromName, toName string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(m.Serialize(from)),
		B:        difflib.SplitLines(m.Serialize(to)),
		FromFile: fromName,
		ToFile:   toName,
		Context:  diffContextLines,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff suites: %w", err)
	}

	return text, nil
}
