package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	m "suitegen.dev/pkg/suitegen/internal/model"
)

const (
	absentLabel  = "-"
	validLabel   = "ok"
	invalidLabel = "invalid"
)

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func renderSuiteTable(path m.Path, config *m.SuiteConfig) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Field", "Value"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, row := range suiteRows(path, config) {
		table.Append(row)
	}

	table.Render()

	return tableBuffer.String()
}

func suiteRows(path m.Path, config *m.SuiteConfig) [][]string {
	selector := config.Selector
	executor := config.Executor

	rows := [][]string{
		{"Path", string(path)},
		{"Test kind", config.TestKind},
		{"Description", optionalString(config.Description)},
		{"Matrix suite", optionalBool(config.MatrixSuite)},
		{"Test root", selector.TestRoot.String()},
		{"Include files", countLabel(selector.IncludeFiles)},
		{"Exclude files", countLabel(selector.ExcludeFiles)},
		{"Include with any tags", joinOrAbsent(selector.IncludeWithAnyTags)},
		{"Exclude with any tags", tagSetLabel(selector.ExcludeWithAnyTags)},
		{"Include tags", presence(selector.IncludeTags != nil)},
		{"Exclude tags", presence(selector.ExcludeTags != nil)},
		{"Tag file", optionalString(selector.TagFile)},
		{"Test", optionalString(selector.Test)},
		{"Group size", optionalUint(selector.GroupSize)},
		{"Group count multiplier", optionalFloat(selector.GroupCountMultiplier)},
		{"Executor", executorSections(executor)},
	}

	return rows
}

func renderSuiteListTable(entries []m.SuiteEntry) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Path", "Test Kind", "Test Root", "Excludes"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
	})

	sorted := make([]m.SuiteEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	failed := 0

	for _, entry := range sorted {
		if entry.Err != nil || entry.Config == nil {
			failed++

			table.Append([]string{string(entry.Path), "error", errorLabel(entry.Err), absentLabel})

			continue
		}

		table.Append([]string{
			string(entry.Path),
			entry.Config.TestKind,
			entry.Config.Selector.TestRoot.String(),
			fmt.Sprintf("%d", len(entry.Config.Selector.ExcludeFiles)),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Suites %d", len(sorted)),
		"",
		fmt.Sprintf("Errors %d", failed),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func renderGeneratedTable(suites []m.GeneratedSuite) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Suite", "Path", "Tests"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, suite := range suites {
		tests := fmt.Sprintf("%d", suite.Tests)
		if suite.Misc {
			tests = "misc"
		} else {
			total += suite.Tests
		}

		table.Append([]string{suite.Name, string(suite.Path), tests})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Suites %d", len(suites)), "", fmt.Sprintf("%d", total)})
	table.Render()

	return tableBuffer.String()
}

func renderValidationTable(results []m.ValidationResult) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Path", "Status", "Error"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	invalid := 0

	for _, result := range results {
		if result.Valid() {
			table.Append([]string{string(result.Path), validLabel, ""})
			continue
		}

		invalid++

		table.Append([]string{string(result.Path), invalidLabel, errorLabel(result.Err)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		fmt.Sprintf("Invalid %d", invalid),
		"",
	})
	table.Render()

	return tableBuffer.String()
}

func executorSections(executor m.Executor) string {
	var sections []string

	if executor.Archive != nil {
		sections = append(sections, "archive")
	}

	if executor.Hooks != nil {
		sections = append(sections, fmt.Sprintf("hooks(%d)", len(executor.Hooks)))
	}

	if executor.Config != nil {
		sections = append(sections, "config")
	}

	if executor.Fixture != nil {
		sections = append(sections, "fixture")
	}

	return joinOrAbsent(sections)
}

// errorLabel keeps table rows on one line.
func errorLabel(err error) string {
	if err == nil {
		return absentLabel
	}

	return strings.ReplaceAll(err.Error(), "\n", " ")
}

func optionalString(value *string) string {
	if value == nil {
		return absentLabel
	}

	return *value
}

func optionalBool(value *bool) string {
	if value == nil {
		return absentLabel
	}

	return fmt.Sprintf("%t", *value)
}

func optionalUint(value *uint) string {
	if value == nil {
		return absentLabel
	}

	return fmt.Sprintf("%d", *value)
}

func optionalFloat(value *float64) string {
	if value == nil {
		return absentLabel
	}

	return fmt.Sprintf("%g", *value)
}

func countLabel(list []string) string {
	if list == nil {
		return absentLabel
	}

	return fmt.Sprintf("%d", len(list))
}

func joinOrAbsent(list []string) string {
	if list == nil {
		return absentLabel
	}

	return "[" + strings.Join(list, ", ") + "]"
}

func tagSetLabel(tags m.TagSet) string {
	if tags == nil {
		return absentLabel
	}

	return joinOrAbsent(tags.Sorted())
}

func presence(set bool) string {
	if set {
		return "set"
	}

	return absentLabel
}
