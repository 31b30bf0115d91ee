package model

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

var errEmptyDocument = errors.New("empty document")

// suiteDocument is the on-disk layout of a SuiteConfig.
type suiteDocument struct {
	MatrixSuite *bool     `yaml:"matrix_suite,omitempty"`
	Description *string   `yaml:"description,omitempty"`
	TestKind    *string   `yaml:"test_kind"`
	Selector    *Selector `yaml:"selector"`
	Executor    *Executor `yaml:"executor"`
}

// selectorDocument is the on-disk layout of a Selector. On decode the test
// root keys are split off the mapping first, so Root and Roots are only
// filled on encode.
type selectorDocument struct {
	Root                 *string   `yaml:"root,omitempty"`
	Roots                *[]string `yaml:"roots,omitempty"`
	ExcludeTags          any       `yaml:"exclude_tags,omitempty"`
	ExcludeFiles         *[]string `yaml:"exclude_files,omitempty"`
	ExcludeWithAnyTags   *[]string `yaml:"exclude_with_any_tags,omitempty"`
	GroupSize            *uint     `yaml:"group_size,omitempty"`
	GroupCountMultiplier *float64  `yaml:"group_count_multiplier,omitempty"`
	IncludeWithAnyTags   *[]string `yaml:"include_with_any_tags,omitempty"`
	IncludeFiles         *[]string `yaml:"include_files,omitempty"`
	IncludeTags          any       `yaml:"include_tags,omitempty"`
	TagFile              *string   `yaml:"tag_file,omitempty"`
	Test                 *string   `yaml:"test,omitempty"`
}

type executorDocument struct {
	Archive any    `yaml:"archive,omitempty"`
	Hooks   *[]any `yaml:"hooks,omitempty"`
	Config  any    `yaml:"config,omitempty"`
	Fixture any    `yaml:"fixture,omitempty"`
}

// Parse decodes a suite configuration from YAML text. Malformed input is
// logged together with the offending text and returned as a *ParseError.
func Parse(text string) (*SuiteConfig, error) {
	config, err := decodeSuite(text)
	if err != nil {
		slog.Error("Failed to parse yaml for suite config", "yaml", text, "error", err)
		return nil, &ParseError{Text: text, Err: err}
	}

	return config, nil
}

func decodeSuite(text string) (*SuiteConfig, error) {
	var document yaml.Node
	if err := yaml.Unmarshal([]byte(text), &document); err != nil {
		return nil, err
	}

	if document.Kind != yaml.DocumentNode || len(document.Content) == 0 {
		return nil, errEmptyDocument
	}

	if root := document.Content[0]; root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: suite config must be a mapping, got %s", root.Line, kindName(root))
	}

	var config SuiteConfig
	if err := document.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Serialize encodes the suite configuration as YAML, emitting only the
// fields that are set. Values built through this package always encode, so
// a failure here is a programming error and panics.
func Serialize(c *SuiteConfig) string {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		panic(fmt.Sprintf("serialize suite config: %v", err))
	}

	if err := encoder.Close(); err != nil {
		panic(fmt.Sprintf("serialize suite config: %v", err))
	}

	return buf.String()
}

// String returns the YAML form of the configuration.
func (c *SuiteConfig) String() string {
	return Serialize(c)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *SuiteConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: suite config must be a mapping, got %s", value.Line, kindName(value))
	}

	var doc suiteDocument
	if err := value.Decode(&doc); err != nil {
		return err
	}

	switch {
	case doc.TestKind == nil:
		return missingField("test_kind")
	case doc.Selector == nil:
		return missingField("selector")
	case doc.Executor == nil:
		return missingField("executor")
	}

	*c = SuiteConfig{
		MatrixSuite: doc.MatrixSuite,
		Description: doc.Description,
		TestKind:    *doc.TestKind,
		Selector:    *doc.Selector,
		Executor:    *doc.Executor,
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c SuiteConfig) MarshalYAML() (interface{}, error) {
	testKind := c.TestKind
	selector := c.Selector
	executor := c.Executor

	return suiteDocument{
		MatrixSuite: c.MatrixSuite,
		Description: c.Description,
		TestKind:    &testKind,
		Selector:    &selector,
		Executor:    &executor,
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Selector) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: selector must be a mapping, got %s", value.Line, kindName(value))
	}

	fields, root, roots, err := splitTestRoot(value)
	if err != nil {
		return err
	}

	var doc selectorDocument
	if err := fields.Decode(&doc); err != nil {
		return err
	}

	testRoot, err := decodeTestRoot(root, roots)
	if err != nil {
		return err
	}

	selector := Selector{
		ExcludeTags:          doc.ExcludeTags,
		ExcludeFiles:         derefStrings(doc.ExcludeFiles),
		GroupSize:            doc.GroupSize,
		GroupCountMultiplier: doc.GroupCountMultiplier,
		IncludeWithAnyTags:   derefStrings(doc.IncludeWithAnyTags),
		IncludeFiles:         derefStrings(doc.IncludeFiles),
		IncludeTags:          doc.IncludeTags,
		TestRoot:             testRoot,
		TagFile:              doc.TagFile,
		Test:                 doc.Test,
	}

	if doc.ExcludeWithAnyTags != nil {
		selector.ExcludeWithAnyTags = NewTagSet(*doc.ExcludeWithAnyTags...)
	}

	*s = selector

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Selector) MarshalYAML() (interface{}, error) {
	doc := selectorDocument{
		ExcludeTags:          s.ExcludeTags,
		ExcludeFiles:         refStrings(s.ExcludeFiles),
		GroupSize:            s.GroupSize,
		GroupCountMultiplier: s.GroupCountMultiplier,
		IncludeWithAnyTags:   refStrings(s.IncludeWithAnyTags),
		IncludeFiles:         refStrings(s.IncludeFiles),
		IncludeTags:          s.IncludeTags,
		TagFile:              s.TagFile,
		Test:                 s.Test,
	}

	if s.ExcludeWithAnyTags != nil {
		tags := s.ExcludeWithAnyTags.Sorted()
		doc.ExcludeWithAnyTags = &tags
	}

	if s.TestRoot != nil {
		switch s.TestRoot.Kind {
		case RootFile:
			root := s.TestRoot.Root
			doc.Root = &root
		case RootList:
			roots := s.TestRoot.Roots
			if roots == nil {
				roots = []string{}
			}

			doc.Roots = &roots
		default:
			return nil, fmt.Errorf("unknown test root kind %d", s.TestRoot.Kind)
		}
	}

	return doc, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Executor) UnmarshalYAML(value *yaml.Node) error {
	var doc executorDocument
	if err := value.Decode(&doc); err != nil {
		return err
	}

	executor := Executor{
		Archive: doc.Archive,
		Config:  doc.Config,
		Fixture: doc.Fixture,
	}

	if doc.Hooks != nil {
		executor.Hooks = *doc.Hooks
		if executor.Hooks == nil {
			executor.Hooks = []any{}
		}
	}

	*e = executor

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (e Executor) MarshalYAML() (interface{}, error) {
	doc := executorDocument{
		Archive: e.Archive,
		Config:  e.Config,
		Fixture: e.Fixture,
	}

	if e.Hooks != nil {
		hooks := e.Hooks
		doc.Hooks = &hooks
	}

	return doc, nil
}

// decodeTestRoot picks the TestRoot variant: a `root` file path first, then
// a `roots` list. A key that is present but matches neither variant fails.
func decodeTestRoot(root, roots *yaml.Node) (*TestRoot, error) {
	if root != nil && root.Kind == yaml.ScalarNode {
		var path string
		if err := root.Decode(&path); err == nil {
			return NewRootFile(path), nil
		}
	}

	if roots != nil && roots.Kind == yaml.SequenceNode {
		var list []string
		if err := roots.Decode(&list); err == nil {
			return NewRootList(list...), nil
		}
	}

	switch {
	case root != nil:
		return nil, fmt.Errorf("line %d: test root matches neither `root` nor `roots`", root.Line)
	case roots != nil:
		return nil, fmt.Errorf("line %d: test root matches neither `root` nor `roots`", roots.Line)
	}

	return nil, nil
}

// splitTestRoot separates the flattened `root` and `roots` entries from the
// other selector keys. Merge keys are expanded first, explicit keys taking
// precedence over merged ones. Null values count as absent.
func splitTestRoot(mapping *yaml.Node) (fields, root, roots *yaml.Node, err error) {
	fields = &yaml.Node{
		Kind:   mapping.Kind,
		Tag:    mapping.Tag,
		Line:   mapping.Line,
		Column: mapping.Column,
	}

	entries, err := mappingEntries(mapping, map[*yaml.Node]bool{})
	if err != nil {
		return nil, nil, nil, err
	}

	defined := make(map[string]int)

	for _, entry := range entries {
		key, value := entry.key, entry.value

		if key.Value == "root" || key.Value == "roots" {
			if line, ok := defined[key.Value]; ok {
				if !entry.merged {
					return nil, nil, nil, fmt.Errorf("line %d: mapping key %q already defined at line %d", key.Line, key.Value, line)
				}

				continue
			}

			defined[key.Value] = key.Line
		}

		switch {
		case key.Value == "root" && value.ShortTag() != "!!null":
			root = value
		case key.Value == "roots" && value.ShortTag() != "!!null":
			roots = value
		case key.Value == "root", key.Value == "roots":
			// explicit null, same as absent
		default:
			fields.Content = append(fields.Content, key, value)
		}
	}

	return fields, root, roots, nil
}

type mappingEntry struct {
	key    *yaml.Node
	value  *yaml.Node
	merged bool
}

// mappingEntries lists the own entries of a mapping followed by the entries
// pulled in through `<<` merge keys. Merged entries whose key is already
// present are dropped; among several merged mappings the first one wins.
func mappingEntries(mapping *yaml.Node, visiting map[*yaml.Node]bool) ([]mappingEntry, error) {
	if visiting[mapping] {
		return nil, fmt.Errorf("line %d: recursive merge", mapping.Line)
	}

	visiting[mapping] = true
	defer delete(visiting, mapping)

	var own, merged []mappingEntry

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]

		if key.Kind != yaml.ScalarNode || key.ShortTag() != "!!merge" {
			own = append(own, mappingEntry{key: key, value: value})
			continue
		}

		sources := []*yaml.Node{value}
		if resolved := resolveAlias(value); resolved.Kind == yaml.SequenceNode {
			sources = resolved.Content
		}

		for _, source := range sources {
			source = resolveAlias(source)
			if source.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("line %d: map merge requires a mapping or a sequence of mappings", source.Line)
			}

			entries, err := mappingEntries(source, visiting)
			if err != nil {
				return nil, err
			}

			merged = append(merged, entries...)
		}
	}

	present := make(map[string]bool, len(own))
	for _, entry := range own {
		present[entry.key.Value] = true
	}

	entries := own
	for _, entry := range merged {
		if present[entry.key.Value] {
			continue
		}

		present[entry.key.Value] = true
		entries = append(entries, mappingEntry{key: entry.key, value: entry.value, merged: true})
	}

	return entries, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}

// derefStrings keeps the difference between an absent list (nil) and an
// empty one.
func derefStrings(list *[]string) []string {
	if list == nil {
		return nil
	}

	if *list == nil {
		return []string{}
	}

	return *list
}

func refStrings(list []string) *[]string {
	if list == nil {
		return nil
	}

	return &list
}

func kindName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return "null"
		}

		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
