package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "suitegen.dev/pkg/suitegen/internal/model"
)

func ptr[T any](v T) *T {
	return &v
}

func newSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func sampleSuite() *m.SuiteConfig {
	return &m.SuiteConfig{
		Description: ptr("core js tests"),
		TestKind:    "js_test",
		Selector: m.Selector{
			TestRoot:           m.NewRootFile("jstests/core/*.js"),
			ExcludeFiles:       []string{"jstests/core/a.js", "jstests/core/b.js"},
			ExcludeWithAnyTags: m.NewTagSet("requires_sharding", "assumes_standalone"),
			GroupSize:          ptr(uint(4)),
		},
		Executor: m.Executor{
			Hooks:   []any{map[string]any{"class": "ValidateCollections"}},
			Fixture: map[string]any{"class": "MongoDFixture"},
		},
	}
}

func TestSimpleUI_DisplaySuite(t *testing.T) {
	ui, buf := newSimpleUI()

	err := ui.DisplaySuite(context.Background(), m.Path("suites/core.yml"), sampleSuite())
	require.NoError(t, err)

	out := buf.String()
	for _, want := range []string{
		"suites/core.yml",
		"js_test",
		"core js tests",
		"root: jstests/core/*.js",
		"[assumes_standalone, requires_sharding]",
		"hooks(1), fixture",
		"Matrix suite",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSimpleUI_DisplaySuite_NilConfig(t *testing.T) {
	ui, _ := newSimpleUI()

	err := ui.DisplaySuite(context.Background(), m.Path("a.yml"), nil)
	assert.Error(t, err)
}

func TestSimpleUI_DisplayDocument(t *testing.T) {
	ui, buf := newSimpleUI()

	require.NoError(t, ui.DisplayDocument(context.Background(), "core_0", "test_kind: js_test"))
	assert.Equal(t, "# core_0\ntest_kind: js_test\n", buf.String())
}

func TestSimpleUI_DisplayDiff(t *testing.T) {
	t.Run("empty diff", func(t *testing.T) {
		ui, buf := newSimpleUI()

		require.NoError(t, ui.DisplayDiff(context.Background(), ""))
		assert.Equal(t, "no changes\n", buf.String())
	})

	t.Run("diff is printed verbatim", func(t *testing.T) {
		ui, buf := newSimpleUI()
		diff := "--- a\n+++ b\n@@ -1 +1 @@\n-x\n+y\n"

		require.NoError(t, ui.DisplayDiff(context.Background(), diff))
		assert.Equal(t, diff, buf.String())
	})
}

func TestSimpleUI_DisplaySuiteList(t *testing.T) {
	ui, buf := newSimpleUI()

	entries := []m.SuiteEntry{
		{Path: m.Path("z.yml"), Config: sampleSuite()},
		{Path: m.Path("broken.yml"), Err: errors.New("parse suite config:\nbad")},
	}

	require.NoError(t, ui.DisplaySuiteList(context.Background(), entries))

	out := buf.String()
	assert.Contains(t, out, "z.yml")
	assert.Contains(t, out, "parse suite config: bad")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("broken.yml")), bytes.Index(buf.Bytes(), []byte("z.yml")))
	assert.Contains(t, out, "TOTAL SUITES 2")
	assert.Contains(t, out, "ERRORS 1")
}

func TestSimpleUI_DisplayGenerated(t *testing.T) {
	ui, buf := newSimpleUI()

	suites := []m.GeneratedSuite{
		{Name: "core_0", Path: m.Path("out/core_0.yml"), Tests: 3},
		{Name: "core_1", Path: m.Path("out/core_1.yml"), Tests: 2},
		{Name: "core_misc", Path: m.Path("out/core_misc.yml"), Tests: 5, Misc: true},
	}

	require.NoError(t, ui.DisplayGenerated(context.Background(), suites))

	out := buf.String()
	assert.Contains(t, out, "out/core_0.yml")
	assert.Contains(t, out, "core_misc")
	assert.Contains(t, out, "misc")
	assert.Contains(t, out, "TOTAL SUITES 3")
}

func TestSimpleUI_DisplayValidation(t *testing.T) {
	ui, buf := newSimpleUI()

	results := []m.ValidationResult{
		{Path: m.Path("good.yml")},
		{Path: m.Path("bad.yml"), Err: errors.New("missing test_kind")},
	}

	require.NoError(t, ui.DisplayValidation(context.Background(), results))

	out := buf.String()
	assert.Contains(t, out, "good.yml")
	assert.Contains(t, out, "missing test_kind")
	assert.Contains(t, out, "INVALID 1")
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	ui, buf := newSimpleUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, ui.DisplayDocument(ctx, "x", "y"), context.Canceled)
	assert.ErrorIs(t, ui.DisplayValidation(ctx, nil), context.Canceled)
	assert.Empty(t, buf.String())
}
