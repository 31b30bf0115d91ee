package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTests(t *testing.T) {
	tests := []struct {
		name  string
		tests []string
		count int
		want  [][]string
	}{
		{
			name:  "even split",
			tests: []string{"a", "b", "c", "d"},
			count: 2,
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "remainder goes to the first chunks",
			tests: []string{"a", "b", "c", "d", "e"},
			count: 3,
			want:  [][]string{{"a", "b"}, {"c", "d"}, {"e"}},
		},
		{
			name:  "count larger than tests",
			tests: []string{"a", "b"},
			count: 5,
			want:  [][]string{{"a"}, {"b"}},
		},
		{
			name:  "single chunk",
			tests: []string{"a", "b", "c"},
			count: 1,
			want:  [][]string{{"a", "b", "c"}},
		},
		{
			name:  "no tests",
			tests: []string{},
			count: 3,
			want:  [][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitTests(tt.tests, tt.count)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitTests_SizesDifferByAtMostOne(t *testing.T) {
	tests := make([]string, 23)
	for i := range tests {
		tests[i] = string(rune('a' + i))
	}

	chunks, err := SplitTests(tests, 5)
	require.NoError(t, err)
	require.Len(t, chunks, 5)

	var joined []string

	for _, chunk := range chunks {
		assert.GreaterOrEqual(t, len(chunk), 4)
		assert.LessOrEqual(t, len(chunk), 5)

		joined = append(joined, chunk...)
	}

	assert.Equal(t, tests, joined)
}

func TestSplitTests_ChunksDoNotAlias(t *testing.T) {
	tests := []string{"a", "b"}

	chunks, err := SplitTests(tests, 1)
	require.NoError(t, err)

	chunks[0][0] = "changed"
	assert.Equal(t, "a", tests[0])
}

func TestSplitTests_InvalidCount(t *testing.T) {
	for _, count := range []int{0, -1} {
		_, err := SplitTests([]string{"a"}, count)
		assert.Error(t, err)
	}
}

func TestSubSuiteName(t *testing.T) {
	tests := []struct {
		index int
		count int
		want  string
	}{
		{index: 0, count: 1, want: "core_0"},
		{index: 3, count: 5, want: "core_3"},
		{index: 3, count: 10, want: "core_3"},
		{index: 3, count: 11, want: "core_03"},
		{index: 10, count: 11, want: "core_10"},
		{index: 7, count: 101, want: "core_007"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SubSuiteName("core", tt.index, tt.count))
	}
}

func TestMiscSuiteName(t *testing.T) {
	assert.Equal(t, "core_misc", MiscSuiteName("core"))
}
