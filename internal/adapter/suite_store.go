package adapter

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	m "suitegen.dev/pkg/suitegen/internal/model"
)

const suiteFilePerm = 0o644

// SuiteStore loads and saves suite configuration files and the plain-text
// test lists that feed them.
type SuiteStore interface {
	// LoadSuite reads and parses the suite file at path. Parse failures are
	// returned as *model.ParseError.
	LoadSuite(ctx context.Context, path m.Path) (*m.SuiteConfig, error)

	// SaveSuite serializes config to path.
	SaveSuite(ctx context.Context, path m.Path, config *m.SuiteConfig) error

	// LoadTestList reads one test per line. Blank lines and lines starting
	// with '#' are skipped.
	LoadTestList(ctx context.Context, path m.Path) ([]string, error)
}

type suiteStore struct {
	fs SuiteFSAdapter
}

// NewSuiteStore creates a SuiteStore backed by the given filesystem adapter.
func NewSuiteStore(fs SuiteFSAdapter) SuiteStore {
	return &suiteStore{fs: fs}
}

func (s *suiteStore) LoadSuite(ctx context.Context, path m.Path) (*m.SuiteConfig, error) {
	content, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		slog.Error("Failed to read suite file", "path", path, "error", err)
		return nil, fmt.Errorf("read suite %s: %w", path, err)
	}

	config, err := m.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("load suite %s: %w", path, err)
	}

	slog.Debug("Loaded suite", "path", path, "test_kind", config.TestKind)

	return config, nil
}

func (s *suiteStore) SaveSuite(ctx context.Context, path m.Path, config *m.SuiteConfig) error {
	if err := s.fs.WriteFile(ctx, path, []byte(m.Serialize(config)), suiteFilePerm); err != nil {
		slog.Error("Failed to write suite file", "path", path, "error", err)
		return fmt.Errorf("write suite %s: %w", path, err)
	}

	slog.Debug("Saved suite", "path", path)

	return nil
}

func (s *suiteStore) LoadTestList(ctx context.Context, path m.Path) ([]string, error) {
	content, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		slog.Error("Failed to read test list", "path", path, "error", err)
		return nil, fmt.Errorf("read test list %s: %w", path, err)
	}

	tests := []string{}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tests = append(tests, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan test list %s: %w", path, err)
	}

	slog.Debug("Loaded test list", "path", path, "tests", len(tests))

	return tests, nil
}
