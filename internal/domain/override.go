package domain

import (
	m "suitegen.dev/pkg/suitegen/internal/model"
)

// DeriveWithTests returns a copy of config whose selector targets another
// set of tests. A nil slice means the list was not given.
//
// When excludeTests is given, its entries are appended to the selector's
// exclude_files, in order and without deduplication, and runTests is
// ignored. Otherwise, when runTests is given, exclude_files is dropped and
// the test root becomes exactly runTests. With neither list the copy is
// unchanged. config itself is never modified.
func DeriveWithTests(config *m.SuiteConfig, runTests, excludeTests []string) *m.SuiteConfig {
	derived := config.Clone()

	switch {
	case excludeTests != nil:
		excluded := make([]string, 0, len(derived.Selector.ExcludeFiles)+len(excludeTests))
		excluded = append(excluded, derived.Selector.ExcludeFiles...)
		excluded = append(excluded, excludeTests...)
		derived.Selector.ExcludeFiles = excluded
	case runTests != nil:
		derived.Selector.ExcludeFiles = nil
		derived.Selector.TestRoot = m.NewRootList(runTests...)
	}

	return derived
}
