package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSuite(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name: "minimal suite",
			yaml: "test_kind: js_test\nselector: {}\nexecutor: {}\n",
		},
		{
			name: "full suite",
			yaml: `
matrix_suite: true
description: core passthrough
test_kind: js_test
selector:
  roots:
    - jstests/core/**/*.js
  exclude_files:
    - jstests/core/txns/*.js
  exclude_with_any_tags: [assumes_standalone]
  exclude_tags:
    $anyOf: [a, b]
  group_size: 2
  group_count_multiplier: 1.5
  tag_file: etc/tags.yml
executor:
  archive:
    hooks: [ValidateCollections]
  hooks:
    - class: ValidateCollections
  config:
    shell_options:
      eval: "1"
  fixture:
    class: ReplicaSetFixture
    num_nodes: 3
`,
		},
		{name: "missing test_kind", yaml: "selector: {}\nexecutor: {}\n", wantErr: true},
		{name: "empty test_kind", yaml: "test_kind: ''\nselector: {}\nexecutor: {}\n", wantErr: true},
		{name: "unknown top-level key", yaml: "test_kind: js_test\nselector: {}\nexecutor: {}\nextra: 1\n", wantErr: true},
		{name: "root and roots together", yaml: "test_kind: js_test\nselector: {root: a.txt, roots: [b.js]}\nexecutor: {}\n", wantErr: true},
		{name: "roots not a list", yaml: "test_kind: js_test\nselector: {roots: b.js}\nexecutor: {}\n", wantErr: true},
		{name: "group_size zero", yaml: "test_kind: js_test\nselector: {group_size: 0}\nexecutor: {}\n", wantErr: true},
		{name: "hooks not a list", yaml: "test_kind: js_test\nselector: {}\nexecutor: {hooks: x}\n", wantErr: true},
		{name: "invalid yaml", yaml: "test_kind: [", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSuite([]byte(tt.yaml))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestNormalize(t *testing.T) {
	in := map[string]any{
		"a": map[any]any{1: "one", "two": []any{true, nil}},
	}

	assert.Equal(t, map[string]any{
		"a": map[string]any{"1": "one", "two": []any{true, nil}},
	}, normalize(in))
}
