package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"suitegen.dev/pkg/suitegen/internal/domain"
	m "suitegen.dev/pkg/suitegen/internal/model"
)

func TestDeriveCmd_Args(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.DeriveArgs
	}{
		{
			name: "no test lists",
			args: []string{"derive", "core.yml"},
			want: domain.DeriveArgs{Suite: m.Path("core.yml")},
		},
		{
			name: "run tests",
			args: []string{"derive", "core.yml", "--run", "a.js", "-r", "b.js"},
			want: domain.DeriveArgs{Suite: m.Path("core.yml"), RunTests: []string{"a.js", "b.js"}},
		},
		{
			name: "exclude tests from flag and file",
			args: []string{"derive", "core.yml", "-x", "a.js", "--exclude-file", "flaky.txt", "--out", "out.yml", "--diff"},
			want: domain.DeriveArgs{
				Suite:        m.Path("core.yml"),
				ExcludeTests: []string{"a.js"},
				ExcludeFile:  m.Path("flaky.txt"),
				Out:          m.Path("out.yml"),
				Diff:         true,
			},
		},
		{
			name: "run file only",
			args: []string{"derive", "core.yml", "--run-file", "tests.txt"},
			want: domain.DeriveArgs{Suite: m.Path("core.yml"), RunFile: m.Path("tests.txt")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := withMockWorkflow(t)

			var got domain.DeriveArgs

			mockWorkflow.On("Derive", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
				got = args.Get(1).(domain.DeriveArgs)
			}).Return(nil)

			require.NoError(t, newTestRootCmd(newDeriveCmd(), tt.args...).Execute())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveCmd_UnsetListsStayNil(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.On("Derive", mock.Anything, mock.MatchedBy(func(args domain.DeriveArgs) bool {
		return args.RunTests == nil && args.ExcludeTests == nil
	})).Return(nil)

	require.NoError(t, newTestRootCmd(newDeriveCmd(), "derive", "core.yml").Execute())
}

func TestDeriveCmd_RequiresSuite(t *testing.T) {
	withMockWorkflow(t)

	require.Error(t, newTestRootCmd(newDeriveCmd(), "derive").Execute())
}
