package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"suitegen.dev/pkg/suitegen/internal/domain"
	domainmocks "suitegen.dev/pkg/suitegen/internal/domain/mocks"
	m "suitegen.dev/pkg/suitegen/internal/model"
)

// withMockWorkflow swaps the shared workflow for a mock for the duration of the test.
func withMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func newTestRootCmd(sub *cobra.Command, args ...string) *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	return cmd
}

func TestViewCmd_PassesSuitePath(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("View", mock.Anything, domain.ViewArgs{Suite: m.Path("suites/core.yml")}).Return(nil)

	cmd := newTestRootCmd(newViewCmd(), "view", "suites/core.yml")
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_ReturnsWorkflowError(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("View", mock.Anything, mock.Anything).Return(errors.New("boom"))

	cmd := newTestRootCmd(newViewCmd(), "view", "suites/core.yml")
	require.EqualError(t, cmd.Execute(), "boom")
}

func TestViewCmd_RequiresExactlyOneSuite(t *testing.T) {
	withMockWorkflow(t)

	require.Error(t, newTestRootCmd(newViewCmd(), "view").Execute())
	require.Error(t, newTestRootCmd(newViewCmd(), "view", "a.yml", "b.yml").Execute())
}
