package engine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Discover expands paths into SQL files in discovery order: arguments are
// kept in the given order and directories are walked in lexical order.
// Files named explicitly are kept whatever their extension. Hidden
// directories are skipped and duplicates are dropped.
func (e *Engine) Discover(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		key := filepath.Clean(path)
		if seen[key] {
			return
		}
		seen[key] = true
		files = append(files, path)
	}

	for _, path := range paths {
		if path == StdinPath {
			add(path)
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("discover %s: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if p != path && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if e.Matches(p) {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("discover %s: %w", path, err)
		}
	}

	if len(files) == 0 {
		return nil, ErrNoSQLFiles
	}
	e.logger.Debug("discovered files", "count", len(files))
	return files, nil
}

// Matches reports whether path has one of the collected extensions.
func (e *Engine) Matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(e.extensions, ext)
}
