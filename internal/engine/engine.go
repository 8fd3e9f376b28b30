// Package engine lints SQL files.
// It discovers files under the given paths and analyzes them in parallel.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/sqlint/pkg/lint"
	"github.com/leapstack-labs/sqlint/pkg/lint/sql"
)

// StdinPath is the path argument that reads SQL from standard input.
const StdinPath = "-"

// ErrNoSQLFiles is returned when the given paths contain no SQL files.
var ErrNoSQLFiles = errors.New("no SQL files found")

// Engine runs the analyzer over files.
type Engine struct {
	analyzer   *sql.Analyzer
	jobs       int
	logger     *slog.Logger
	extensions []string
	stdin      io.Reader
}

// Config holds engine configuration.
type Config struct {
	// Lint controls codes, severities and checker options (optional)
	Lint *lint.Config
	// Jobs limits concurrent analyses; <= 0 uses GOMAXPROCS
	Jobs int
	// Extensions are the file suffixes collected from directories (default ".sql")
	Extensions []string
	// Stdin is read for the "-" path (optional, uses os.Stdin if nil)
	Stdin io.Reader
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates an engine.
func New(cfg Config) *Engine {
	// Initialize logger (use discard handler if nil)
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = []string{".sql"}
	}

	stdin := cfg.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	return &Engine{
		analyzer:   sql.NewAnalyzer(cfg.Lint),
		jobs:       jobs,
		logger:     logger,
		extensions: exts,
		stdin:      stdin,
	}
}

// Analyzer returns the analyzer shared by all runs.
func (e *Engine) Analyzer() *sql.Analyzer {
	return e.analyzer
}

// Run discovers SQL files under paths and lints them.
func (e *Engine) Run(ctx context.Context, paths []string) (*Result, error) {
	files, err := e.Discover(paths)
	if err != nil {
		return nil, err
	}
	return e.LintFiles(ctx, files)
}

// LintFiles lints files in parallel and returns results in input order.
// A file that cannot be read or analyzed gets an error in its FileResult
// and does not stop the others.
func (e *Engine) LintFiles(ctx context.Context, files []string) (*Result, error) {
	start := time.Now()
	result := &Result{Files: make([]FileResult, len(files))}
	if len(files) == 0 {
		return result, nil
	}

	// Each goroutine writes only its own index, so no mutex is needed.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(e.jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			result.Files[i] = e.lintFile(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("lint files: %w", err)
	}

	result.Duration = time.Since(start)
	e.logger.Debug("lint finished",
		slog.Int("files", len(files)),
		slog.Int("violations", result.Count()),
		slog.Duration("duration", result.Duration))
	return result, nil
}

func (e *Engine) lintFile(path string) FileResult {
	src, err := e.readSource(path)
	if err != nil {
		e.logger.Warn("cannot read file", slog.String("path", path), slog.String("error", err.Error()))
		return FileResult{Path: path, Err: err}
	}
	return e.LintSource(path, src)
}

func (e *Engine) readSource(path string) (string, error) {
	if path == StdinPath {
		data, err := io.ReadAll(e.stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// LintSource lints SQL text reported under name.
func (e *Engine) LintSource(name, src string) FileResult {
	violations, err := e.analyzer.Analyze(src)
	if err != nil {
		e.logger.Error("analysis aborted", slog.String("path", name), slog.String("error", err.Error()))
		return FileResult{Path: name, Err: err}
	}
	e.logger.Debug("file linted", slog.String("path", name), slog.Int("violations", len(violations)))
	return FileResult{Path: name, Violations: violations}
}
