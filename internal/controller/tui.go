package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "suitegen.dev/pkg/suitegen/internal/model"
)

// Lines reserved for the pager header and footer.
const pagerChrome = 4

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	footerStyle  = lipgloss.NewStyle().Faint(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// TUI implements UI with styled output and a Bubble Tea pager for content
// taller than the terminal.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplaySuite shows the suite table under a styled title.
func (p *TUI) DisplaySuite(ctx context.Context, path m.Path, config *m.SuiteConfig) error {
	if config == nil {
		return fmt.Errorf("no suite config for %s", path)
	}

	return p.show(ctx, path.SuiteName(), renderSuiteTable(path, config))
}

// DisplayDocument shows a YAML document.
func (p *TUI) DisplayDocument(ctx context.Context, title string, text string) error {
	return p.show(ctx, title, ensureNewline(text))
}

// DisplayDiff shows a unified diff with added and removed lines colored.
func (p *TUI) DisplayDiff(ctx context.Context, diff string) error {
	if diff == "" {
		return p.show(ctx, "diff", "no changes\n")
	}

	return p.show(ctx, "diff", colorDiff(diff))
}

// DisplaySuiteList shows the suites table.
func (p *TUI) DisplaySuiteList(ctx context.Context, entries []m.SuiteEntry) error {
	return p.show(ctx, "suites", renderSuiteListTable(entries))
}

// DisplayGenerated shows the generated suites table.
func (p *TUI) DisplayGenerated(ctx context.Context, suites []m.GeneratedSuite) error {
	return p.show(ctx, "generated suites", renderGeneratedTable(suites))
}

// DisplayValidation shows the validation table.
func (p *TUI) DisplayValidation(ctx context.Context, results []m.ValidationResult) error {
	return p.show(ctx, "validation", renderValidationTable(results))
}

func (p *TUI) show(ctx context.Context, title string, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	width, height := terminalSize(p.output)

	model := newPagerModel(title, content, width, height)

	// Short content, or no terminal to page in: print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.plainView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func colorDiff(diff string) string {
	lines := strings.Split(strings.TrimSuffix(diff, "\n"), "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = titleStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunkStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n") + "\n"
}

// pagerModel is the Bubble Tea model scrolling one block of content.
type pagerModel struct {
	title    string
	content  string
	lines    int
	height   int
	viewport viewport.Model
	quitting bool
}

func newPagerModel(title string, content string, width int, height int) pagerModel {
	vp := viewport.New(width, max(height-pagerChrome, 1))
	vp.SetContent(content)

	return pagerModel{
		title:    title,
		content:  content,
		lines:    strings.Count(content, "\n"),
		height:   height,
		viewport: vp,
	}
}

func (pm pagerModel) needsPagination() bool {
	if pm.height <= 0 {
		return false
	}

	return pm.lines+pagerChrome > pm.height
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-pagerChrome, 1)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(pm.header())
	b.WriteString(pm.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf(
		"%3.f%%  ↑/↓ scroll • pgup/pgdn page • q quit",
		pm.viewport.ScrollPercent()*100,
	)))
	b.WriteString("\n")

	return b.String()
}

// plainView renders the whole content without the pager chrome.
func (pm pagerModel) plainView() string {
	return pm.header() + pm.content
}

func (pm pagerModel) header() string {
	if pm.title == "" {
		return ""
	}

	return titleStyle.Render(pm.title) + "\n\n"
}
