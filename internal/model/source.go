package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// SuiteFileExtensions are the extensions recognised as suite files.
var SuiteFileExtensions = []string{".yml", ".yaml"}

// IsSuiteFile reports whether path looks like a suite configuration file.
func (p Path) IsSuiteFile() bool {
	ext := strings.ToLower(filepath.Ext(string(p)))
	for _, candidate := range SuiteFileExtensions {
		if ext == candidate {
			return true
		}
	}

	return false
}

// SuiteName returns the file base name without its extension, which is the
// name resmoke knows the suite by.
func (p Path) SuiteName() string {
	base := filepath.Base(string(p))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
