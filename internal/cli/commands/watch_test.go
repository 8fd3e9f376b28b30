package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlint/internal/cli/output"
	"github.com/leapstack-labs/sqlint/internal/cli/testutil"
	"github.com/leapstack-labs/sqlint/internal/engine"
	logtest "github.com/leapstack-labs/sqlint/internal/testutil"
	"github.com/leapstack-labs/sqlint/pkg/core"
)

// lockedBuffer is written by the watch loop while the test reads it.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchLint_RelintsOnChange(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"a.sql": cleanSQL})
	path := filepath.Join(dir, "a.sql")

	out, errOut := &lockedBuffer{}, &lockedBuffer{}
	r := output.NewRendererWithTTY(out, errOut, false, output.ModeText)
	eng := engine.New(engine.Config{Logger: logtest.NewTestLogger(t)})

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- watchLint(ctx, eng, r, logtest.NewTestLogger(t), []string{dir}, core.SeverityWarning)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(errOut.String(), "Watching for changes")
	}, 5*time.Second, 10*time.Millisecond)
	assert.Empty(t, out.String())

	require.NoError(t, os.WriteFile(path, []byte(indentedSQL), 0o600))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), path+":(L2, 1): ")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchLint_RelintsNamedFile(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{"query.txt": cleanSQL})
	path := filepath.Join(dir, "query.txt")

	out, errOut := &lockedBuffer{}, &lockedBuffer{}
	r := output.NewRendererWithTTY(out, errOut, false, output.ModeText)
	eng := engine.New(engine.Config{Logger: logtest.NewTestLogger(t)})

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- watchLint(ctx, eng, r, logtest.NewTestLogger(t), []string{path}, core.SeverityWarning)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(errOut.String(), "Watching for changes")
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(indentedSQL), 0o600))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), path+":(L2, 1): ")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchLint_RejectsStdin(t *testing.T) {
	r := output.NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, false, output.ModeText)
	eng := engine.New(engine.Config{})

	err := watchLint(t.Context(), eng, r, logtest.NewTestLogger(t), []string{engine.StdinPath}, core.SeverityWarning)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin")
}

func TestRelevantEvent(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o750))
	eng := engine.New(engine.Config{})
	named := filepath.Join(dir, "query.txt")
	explicit := map[string]bool{named: true}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write sql", fsnotify.Event{Name: filepath.Join(dir, "a.sql"), Op: fsnotify.Write}, true},
		{"remove sql", fsnotify.Event{Name: filepath.Join(dir, "a.SQL"), Op: fsnotify.Remove}, true},
		{"chmod sql", fsnotify.Event{Name: filepath.Join(dir, "a.sql"), Op: fsnotify.Chmod}, false},
		{"write other", fsnotify.Event{Name: filepath.Join(dir, "a.md"), Op: fsnotify.Write}, false},
		{"create dir", fsnotify.Event{Name: sub, Op: fsnotify.Create}, true},
		{"write named file", fsnotify.Event{Name: named, Op: fsnotify.Write}, true},
		{"write named file unclean", fsnotify.Event{Name: dir + "/./query.txt", Op: fsnotify.Write}, true},
		{"chmod named file", fsnotify.Event{Name: named, Op: fsnotify.Chmod}, false},
		{"write other txt", fsnotify.Event{Name: filepath.Join(dir, "notes.txt"), Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevantEvent(eng, explicit, tt.event))
		})
	}
}

func TestWatchPath_SkipsHiddenDirs(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"a.sql":        cleanSQL,
		"nested/b.sql": cleanSQL,
		".git/x.sql":   cleanSQL,
	})

	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer func() { _ = watcher.Close() }()

	require.NoError(t, watchPath(watcher, dir))
	assert.ElementsMatch(t, []string{dir, filepath.Join(dir, "nested")}, watcher.WatchList())

	require.Error(t, watchPath(watcher, filepath.Join(dir, "missing")))
}
