package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/sqlint/internal/cli/output"
	"github.com/leapstack-labs/sqlint/internal/engine"
	"github.com/leapstack-labs/sqlint/pkg/core"
)

const watchDebounce = 100 * time.Millisecond

// watchLint lints paths once, then again after every relevant change until
// ctx is canceled. Violations never end the loop.
func watchLint(ctx context.Context, eng *engine.Engine, r *output.Renderer, logger *slog.Logger, paths []string, threshold core.Severity) error {
	if slices.Contains(paths, engine.StdinPath) {
		return errors.New("--watch cannot read from stdin")
	}
	if len(paths) == 0 {
		paths = []string{"."}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	explicit := make(map[string]bool)
	for _, p := range paths {
		if err := watchPath(watcher, p); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			explicit[filepath.Clean(p)] = true
		}
	}

	relint := func() {
		result, err := eng.Run(ctx, paths)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			logger.Error("lint failed", "error", err)
			return
		}
		if err := renderLintResults(r, result, threshold); err != nil {
			logger.Error("render failed", "error", err)
		}
	}

	relint()
	r.Errorf("%s\n", r.Styles().Muted.Render("Watching for changes (Ctrl+C to stop)"))

	// The timer channel is only read from this loop, so re-linting never
	// runs concurrently with itself.
	debounce := time.NewTimer(watchDebounce)
	debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(eng, explicit, event) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchPath(watcher, event.Name); err != nil {
						logger.Warn("failed to watch directory", "path", event.Name, "error", err)
					}
				}
			}
			logger.Debug("file changed", "path", event.Name, "op", event.Op.String())
			debounce.Reset(watchDebounce)

		case <-debounce.C:
			relint()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}

// relevantEvent reports whether event can change lint results. Files named
// on the command line count whatever their extension.
func relevantEvent(eng *engine.Engine, explicit map[string]bool, event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	if eng.Matches(event.Name) || explicit[filepath.Clean(event.Name)] {
		return true
	}
	// New directories may hold SQL files.
	if event.Has(fsnotify.Create) {
		info, err := os.Stat(event.Name)
		return err == nil && info.IsDir()
	}
	return false
}

// watchPath adds a directory tree, or a file's directory, to the watcher.
// Hidden directories are skipped as in discovery.
func watchPath(watcher *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(path))
	}

	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != path && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return watcher.Add(p)
	})
}
