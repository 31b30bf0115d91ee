package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "suitegen.dev/pkg/suitegen/internal/model"
)

func TestTUI_PrintsWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer

	ui := NewTUI(&buf)

	require.NoError(t, ui.DisplaySuite(context.Background(), m.Path("suites/core.yml"), sampleSuite()))

	out := buf.String()
	assert.Contains(t, out, "core")
	assert.Contains(t, out, "root: jstests/core/*.js")
}

func TestTUI_DisplayDiff(t *testing.T) {
	var buf bytes.Buffer

	ui := NewTUI(&buf)

	require.NoError(t, ui.DisplayDiff(context.Background(), "--- a\n+++ b\n-old\n+new\n"))

	out := buf.String()
	assert.Contains(t, out, "-old")
	assert.Contains(t, out, "+new")
}

func TestTUI_EmptyDiff(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewTUI(&buf).DisplayDiff(context.Background(), ""))
	assert.Contains(t, buf.String(), "no changes")
}

func TestTUI_CancelledContext(t *testing.T) {
	var buf bytes.Buffer

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewTUI(&buf).DisplaySuiteList(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestPagerModel_NeedsPagination(t *testing.T) {
	content := strings.Repeat("line\n", 30)

	tests := []struct {
		name   string
		height int
		want   bool
	}{
		{name: "no terminal", height: 0, want: false},
		{name: "tall terminal", height: 100, want: false},
		{name: "short terminal", height: 10, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := newPagerModel("title", content, 80, tt.height)
			assert.Equal(t, tt.want, model.needsPagination())
		})
	}
}

func TestPagerModel_Update(t *testing.T) {
	model := newPagerModel("title", strings.Repeat("line\n", 30), 80, 10)

	t.Run("window resize", func(t *testing.T) {
		updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 20})

		pm, ok := updated.(pagerModel)
		require.True(t, ok)
		assert.Equal(t, 120, pm.viewport.Width)
		assert.Equal(t, 20-pagerChrome, pm.viewport.Height)
	})

	quitKeys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}

	for _, key := range quitKeys {
		t.Run("quit on "+key.String(), func(t *testing.T) {
			updated, cmd := model.Update(key)

			pm, ok := updated.(pagerModel)
			require.True(t, ok)
			assert.True(t, pm.quitting)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
			assert.Empty(t, pm.View())
		})
	}
}

func TestPagerModel_View(t *testing.T) {
	model := newPagerModel("suites", "a\nb\n", 80, 10)

	view := model.View()
	assert.Contains(t, view, "suites")
	assert.Contains(t, view, "q quit")
	assert.Equal(t, "a\nb\n", strings.TrimPrefix(model.plainView(), model.header()))
}

func TestColorDiff_KeepsLines(t *testing.T) {
	out := colorDiff("@@ -1 +1 @@\n-x\n+y\n context\n")

	assert.Equal(t, 4, strings.Count(out, "\n"))
	assert.Contains(t, out, " context")
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	_, isSimple := NewUI(cmd, false).(*SimpleUI)
	assert.True(t, isSimple)

	_, isTUI := NewUI(cmd, true).(*TUI)
	assert.True(t, isTUI)
}

func TestIsTTY_NonFileWriter(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
