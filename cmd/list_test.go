package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"suitegen.dev/pkg/suitegen/internal/domain"
	m "suitegen.dev/pkg/suitegen/internal/model"
)

func TestListCmd_PassesPaths(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return len(args.Paths) == 2 &&
			args.Paths[0] == m.Path("suites/...") &&
			args.Paths[1] == m.Path("extra.yml") &&
			args.Threads == defaultParallel
	})).Return(nil)

	require.NoError(t, newTestRootCmd(newListCmd(), "list", "suites/...", "extra.yml").Execute())
}

func TestListCmd_NoPaths(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return len(args.Paths) == 0
	})).Return(nil)

	require.NoError(t, newTestRootCmd(newListCmd(), "list").Execute())
}
