package model

import "strconv"

// String describes the test root in one line.
func (r *TestRoot) String() string {
	if r == nil {
		return "-"
	}

	switch r.Kind {
	case RootFile:
		return "root: " + r.Root
	case RootList:
		if len(r.Roots) == 1 {
			return "roots: " + r.Roots[0]
		}

		return "roots: " + strconv.Itoa(len(r.Roots)) + " entries"
	default:
		return "unknown"
	}
}

// SuiteEntry is one suite file found on disk. Config is nil when the file
// failed to parse, in which case Err holds the reason.
type SuiteEntry struct {
	Path   Path
	Config *SuiteConfig
	Err    error
}

// GeneratedSuite is a suite file written by the generator.
type GeneratedSuite struct {
	Name string
	Path Path
	// Tests is the number of tests the suite runs (or excludes, for Misc).
	Tests int
	Misc  bool
}

// ValidationResult is the outcome of validating one suite file.
type ValidationResult struct {
	Path Path
	Err  error
}

// Valid reports whether the file passed validation.
func (r ValidationResult) Valid() bool {
	return r.Err == nil
}
