// Package model defines the resmoke suite configuration document and its YAML codec.
package model

import "sort"

// TestRootKind tells which variant of TestRoot is set.
type TestRootKind int

const (
	// RootFile is a path to a file listing the root tests (`root:` key).
	RootFile TestRootKind = iota
	// RootList is a literal list of root tests (`roots:` key).
	RootList
)

// TestRoot is the base set of tests of a suite. Exactly one of Root and
// Roots is meaningful, selected by Kind.
type TestRoot struct {
	Kind  TestRootKind
	Root  string
	Roots []string
}

// NewRootFile returns a TestRoot pointing at a file of root tests.
func NewRootFile(path string) *TestRoot {
	return &TestRoot{Kind: RootFile, Root: path}
}

// NewRootList returns a TestRoot holding a copy of the given tests.
// The resulting list is never nil, even when no tests are given.
func NewRootList(roots ...string) *TestRoot {
	list := make([]string, len(roots))
	copy(list, roots)

	return &TestRoot{Kind: RootList, Roots: list}
}

// TagSet is an unordered set of test tags.
type TagSet map[string]struct{}

// NewTagSet builds a TagSet from tags. Duplicates collapse.
func NewTagSet(tags ...string) TagSet {
	set := make(TagSet, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}

	return set
}

// Has reports whether tag is in the set.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Sorted returns the tags in lexical order.
func (s TagSet) Sorted() []string {
	tags := make([]string, 0, len(s))
	for tag := range s {
		tags = append(tags, tag)
	}

	sort.Strings(tags)

	return tags
}

// Selector describes which tests belong to a suite. Every field is
// optional: nil means the key is absent from the document.
type Selector struct {
	// ExcludeTags is a tag matching expression (string or nested value) the
	// selected tests must not match.
	ExcludeTags any
	// ExcludeFiles lists paths or glob patterns of tests to leave out.
	ExcludeFiles []string
	// ExcludeWithAnyTags drops any test carrying one of these tags.
	ExcludeWithAnyTags TagSet
	GroupSize          *uint
	// GroupCountMultiplier is a float batching hint.
	GroupCountMultiplier *float64
	// IncludeWithAnyTags requires selected tests to carry at least one tag.
	IncludeWithAnyTags []string
	// IncludeFiles lists paths or glob patterns selected tests must match.
	IncludeFiles []string
	// IncludeTags is a tag matching expression selected tests must match.
	IncludeTags any
	// TestRoot is flattened into the selector mapping as `root` or `roots`.
	TestRoot *TestRoot
	// TagFile is the path of a file associating tests to tags.
	TagFile *string
	Test    *string
}

// Executor describes how the selected tests run. Its values are carried
// through verbatim and never inspected.
type Executor struct {
	Archive any
	Hooks   []any
	Config  any
	Fixture any
}

// SuiteConfig is a resmoke test suite configuration.
type SuiteConfig struct {
	MatrixSuite *bool
	Description *string
	TestKind    string
	Selector    Selector
	Executor    Executor
}
