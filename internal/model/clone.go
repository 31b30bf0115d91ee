package model

// Clone returns a deep copy of the configuration. Slices, maps and opaque
// values of the copy share no memory with c.
func (c *SuiteConfig) Clone() *SuiteConfig {
	if c == nil {
		return nil
	}

	return &SuiteConfig{
		MatrixSuite: clonePtr(c.MatrixSuite),
		Description: clonePtr(c.Description),
		TestKind:    c.TestKind,
		Selector:    c.Selector.Clone(),
		Executor:    c.Executor.Clone(),
	}
}

// Clone returns a deep copy of the selector.
func (s Selector) Clone() Selector {
	clone := Selector{
		ExcludeTags:          cloneValue(s.ExcludeTags),
		ExcludeFiles:         cloneStrings(s.ExcludeFiles),
		GroupSize:            clonePtr(s.GroupSize),
		GroupCountMultiplier: clonePtr(s.GroupCountMultiplier),
		IncludeWithAnyTags:   cloneStrings(s.IncludeWithAnyTags),
		IncludeFiles:         cloneStrings(s.IncludeFiles),
		IncludeTags:          cloneValue(s.IncludeTags),
		TagFile:              clonePtr(s.TagFile),
		Test:                 clonePtr(s.Test),
	}

	if s.ExcludeWithAnyTags != nil {
		clone.ExcludeWithAnyTags = make(TagSet, len(s.ExcludeWithAnyTags))
		for tag := range s.ExcludeWithAnyTags {
			clone.ExcludeWithAnyTags[tag] = struct{}{}
		}
	}

	if s.TestRoot != nil {
		clone.TestRoot = &TestRoot{
			Kind:  s.TestRoot.Kind,
			Root:  s.TestRoot.Root,
			Roots: cloneStrings(s.TestRoot.Roots),
		}
	}

	return clone
}

// Clone returns a deep copy of the executor.
func (e Executor) Clone() Executor {
	clone := Executor{
		Archive: cloneValue(e.Archive),
		Config:  cloneValue(e.Config),
		Fixture: cloneValue(e.Fixture),
	}

	if e.Hooks != nil {
		clone.Hooks = make([]any, len(e.Hooks))
		for i, hook := range e.Hooks {
			clone.Hooks[i] = cloneValue(hook)
		}
	}

	return clone
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p

	return &v
}

func cloneStrings(list []string) []string {
	if list == nil {
		return nil
	}

	clone := make([]string, len(list))
	copy(clone, list)

	return clone
}

// cloneValue deep-copies a decoded YAML value. Scalars are immutable and
// returned as is.
func cloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		clone := make(map[string]any, len(value))
		for key, item := range value {
			clone[key] = cloneValue(item)
		}

		return clone
	case map[any]any:
		clone := make(map[any]any, len(value))
		for key, item := range value {
			clone[key] = cloneValue(item)
		}

		return clone
	case []any:
		if value == nil {
			return value
		}

		clone := make([]any, len(value))
		for i, item := range value {
			clone[i] = cloneValue(item)
		}

		return clone
	case []string:
		return cloneStrings(value)
	default:
		return v
	}
}
