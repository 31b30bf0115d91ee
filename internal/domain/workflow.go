package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"suitegen.dev/pkg/suitegen/internal/adapter"
	"suitegen.dev/pkg/suitegen/internal/controller"
	m "suitegen.dev/pkg/suitegen/internal/model"
	"suitegen.dev/pkg/suitegen/internal/schema"
)

// ErrValidationFailed is returned by Validate when at least one file fails.
var ErrValidationFailed = errors.New("suite validation failed")

const (
	recursiveSuffix   = "/..."
	suiteFileExt      = ".yml"
	derivedSuiteTitle = "derived"
)

// DeriveArgs contains the arguments for deriving a suite. A nil test list
// together with an empty file means the list was not given.
type DeriveArgs struct {
	Suite        m.Path
	RunTests     []string
	RunFile      m.Path
	ExcludeTests []string
	ExcludeFile  m.Path
	// Out is where the derived suite is written. Empty prints it instead.
	Out  m.Path
	Diff bool
}

// GenerateArgs contains the arguments for splitting a suite into sub-suites.
type GenerateArgs struct {
	Suite     m.Path
	TestsFile m.Path
	Output    m.Path
	// Name is the base name of the generated suites. Empty uses the suite file name.
	Name      string
	SubSuites int
	Misc      bool
	Threads   int
}

// ViewArgs contains the arguments for viewing a suite.
type ViewArgs struct {
	Suite m.Path
}

// ListArgs contains the arguments for listing suites.
type ListArgs struct {
	Paths   []m.Path
	Threads int
}

// ValidateArgs contains the arguments for validating suites.
type ValidateArgs struct {
	Paths   []m.Path
	Threads int
}

// Workflow defines the suitegen operations exposed to the CLI.
type Workflow interface {
	Derive(ctx context.Context, args DeriveArgs) error
	Generate(ctx context.Context, args GenerateArgs) error
	View(ctx context.Context, args ViewArgs) error
	List(ctx context.Context, args ListArgs) error
	Validate(ctx context.Context, args ValidateArgs) error
}

type workflow struct {
	adapter.SuiteFSAdapter
	adapter.SuiteStore
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SuiteFSAdapter,
	suiteStore adapter.SuiteStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		SuiteFSAdapter: fsAdapter,
		SuiteStore:     suiteStore,
		UI:             ui,
	}
}

func (w *workflow) Derive(ctx context.Context, args DeriveArgs) error {
	config, err := w.LoadSuite(ctx, args.Suite)
	if err != nil {
		return err
	}

	runTests, err := w.collectTests(ctx, args.RunTests, args.RunFile)
	if err != nil {
		return fmt.Errorf("run tests: %w", err)
	}

	excludeTests, err := w.collectTests(ctx, args.ExcludeTests, args.ExcludeFile)
	if err != nil {
		return fmt.Errorf("exclude tests: %w", err)
	}

	if runTests != nil && excludeTests != nil {
		slog.Warn("Both run and exclude tests given, run tests are ignored", "suite", args.Suite)
	}

	derived := DeriveWithTests(config, runTests, excludeTests)

	if args.Out != "" {
		if err := w.SaveSuite(ctx, args.Out, derived); err != nil {
			return err
		}
	} else if !args.Diff {
		if err := w.DisplayDocument(ctx, args.Suite.SuiteName(), m.Serialize(derived)); err != nil {
			return fmt.Errorf("display: %w", err)
		}
	}

	if !args.Diff {
		return nil
	}

	target := args.Out
	if target == "" {
		target = m.Path(derivedSuiteTitle)
	}

	diff, err := SuiteDiff(config, derived, string(args.Suite), string(target))
	if err != nil {
		return err
	}

	if err := w.DisplayDiff(ctx, diff); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// collectTests merges inline tests with the ones listed in file. The result
// stays nil when neither was given.
func (w *workflow) collectTests(ctx context.Context, inline []string, file m.Path) ([]string, error) {
	if file == "" {
		return inline, nil
	}

	listed, err := w.LoadTestList(ctx, file)
	if err != nil {
		return nil, err
	}

	tests := make([]string, 0, len(inline)+len(listed))
	tests = append(tests, inline...)
	tests = append(tests, listed...)

	return tests, nil
}

func (w *workflow) Generate(ctx context.Context, args GenerateArgs) error {
	config, err := w.LoadSuite(ctx, args.Suite)
	if err != nil {
		return err
	}

	tests, err := w.LoadTestList(ctx, args.TestsFile)
	if err != nil {
		return err
	}

	chunks, err := SplitTests(tests, args.SubSuites)
	if err != nil {
		return err
	}

	name := args.Name
	if name == "" {
		name = args.Suite.SuiteName()
	}

	type job struct {
		config *m.SuiteConfig
		suite  m.GeneratedSuite
	}

	jobs := make([]job, 0, len(chunks)+1)

	for i, chunk := range chunks {
		suiteName := SubSuiteName(name, i, len(chunks))
		jobs = append(jobs, job{
			config: DeriveWithTests(config, chunk, nil),
			suite: m.GeneratedSuite{
				Name:  suiteName,
				Path:  w.JoinPath(ctx, string(args.Output), suiteName+suiteFileExt),
				Tests: len(chunk),
			},
		})
	}

	if args.Misc {
		suiteName := MiscSuiteName(name)
		jobs = append(jobs, job{
			config: DeriveWithTests(config, nil, tests),
			suite: m.GeneratedSuite{
				Name:  suiteName,
				Path:  w.JoinPath(ctx, string(args.Output), suiteName+suiteFileExt),
				Tests: len(tests),
				Misc:  true,
			},
		})
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threadLimit(args.Threads))

	for _, j := range jobs {
		group.Go(func() error {
			return w.SaveSuite(groupCtx, j.suite.Path, j.config)
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Failed to generate suites", "suite", args.Suite, "error", err)
		return fmt.Errorf("generate suites: %w", err)
	}

	generated := make([]m.GeneratedSuite, 0, len(jobs))
	for _, j := range jobs {
		generated = append(generated, j.suite)
	}

	slog.Info("Generated suites", "suite", args.Suite, "count", len(generated), "tests", len(tests))

	if err := w.DisplayGenerated(ctx, generated); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	config, err := w.LoadSuite(ctx, args.Suite)
	if err != nil {
		return err
	}

	if err := w.DisplaySuite(ctx, args.Suite, config); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	paths, err := w.findSuiteFiles(ctx, args.Paths)
	if err != nil {
		return err
	}

	entries := make([]m.SuiteEntry, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threadLimit(args.Threads))

	for i, path := range paths {
		group.Go(func() error {
			config, loadErr := w.LoadSuite(groupCtx, path)
			if errors.Is(loadErr, context.Canceled) {
				return loadErr
			}

			// Unparseable suites are listed, not fatal.
			entries[i] = m.SuiteEntry{Path: path, Config: config, Err: loadErr}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("list suites: %w", err)
	}

	if err := w.DisplaySuiteList(ctx, entries); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) Validate(ctx context.Context, args ValidateArgs) error {
	paths, err := w.findSuiteFiles(ctx, args.Paths)
	if err != nil {
		return err
	}

	results := make([]m.ValidationResult, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threadLimit(args.Threads))

	for i, path := range paths {
		group.Go(func() error {
			results[i] = m.ValidationResult{Path: path, Err: w.validateFile(groupCtx, path)}
			return groupCtx.Err()
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("validate suites: %w", err)
	}

	if err := w.DisplayValidation(ctx, results); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	invalid := 0

	for _, result := range results {
		if !result.Valid() {
			invalid++
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrValidationFailed, invalid, len(results))
	}

	return nil
}

func (w *workflow) validateFile(ctx context.Context, path m.Path) error {
	content, err := w.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	if err := schema.ValidateSuite(content); err != nil {
		slog.Warn("Suite failed schema validation", "path", path, "error", err)
		return err
	}

	if _, err := m.Parse(string(content)); err != nil {
		return err
	}

	return nil
}

// findSuiteFiles expands Go-style path patterns into suite files. A
// trailing "/..." recurses; a directory lists its own suite files; a file
// is taken as is.
func (w *workflow) findSuiteFiles(ctx context.Context, patterns []m.Path) ([]m.Path, error) {
	if len(patterns) == 0 {
		patterns = []m.Path{"."}
	}

	seen := make(map[m.Path]struct{})

	var files []m.Path

	add := func(path m.Path) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, pattern := range patterns {
		root, recursive := splitPattern(pattern)

		info, err := w.FileInfo(ctx, root)
		if err != nil {
			slog.Error("Failed to stat suite path", "path", root, "error", err)
			return nil, fmt.Errorf("suite path %s: %w", root, err)
		}

		if !info.IsDir() {
			add(root)
			continue
		}

		err = w.Walk(ctx, root, recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if !info.IsDir() && m.Path(path).IsSuiteFile() {
				add(m.Path(path))
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

func splitPattern(pattern m.Path) (m.Path, bool) {
	s := string(pattern)
	if s == "..." {
		return ".", true
	}

	if !strings.HasSuffix(s, recursiveSuffix) {
		return pattern, false
	}

	root := strings.TrimSuffix(s, recursiveSuffix)
	if root == "" {
		root = "/"
	}

	return m.Path(root), true
}

func threadLimit(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}
