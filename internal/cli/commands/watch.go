package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/writegood/internal/cli/output"
	"github.com/leapstack-labs/writegood/pkg/lint"
)

// watchDebounce collapses the burst of events editors emit on save.
const watchDebounce = 100 * time.Millisecond

// watchTargets maps each file to its absolute path and returns the set of
// directories to watch. Directories are watched rather than files so that
// editors that save by rename keep being tracked.
func watchTargets(paths []string) (files map[string]string, dirs []string, err error) {
	files = make(map[string]string, len(paths))
	seen := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		files[abs] = p

		dir := filepath.Dir(abs)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	sort.Strings(dirs)
	return files, dirs, nil
}

// watchFiles lints paths once, then again every time one of them changes,
// until ctx is cancelled.
func watchFiles(ctx context.Context, r *output.Renderer, analyzer *lint.Analyzer, paths []string, logger *slog.Logger) error {
	files, dirs, err := watchTargets(paths)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	// Output from the debounce timer and the initial pass must not interleave.
	var mu sync.Mutex
	relint := func(rel []string) {
		mu.Lock()
		defer mu.Unlock()

		results, err := lintPaths(ctx, analyzer, rel, nil, len(rel), logger)
		if err != nil {
			r.Error(err.Error())
			return
		}
		renderLintResults(r, results)
	}

	relint(paths)
	r.Println(r.Styles().Muted.Render("Watching for changes. Press Ctrl+C to stop."))

	var (
		pendingMu     sync.Mutex
		pending       = make(map[string]bool)
		debounceTimer *time.Timer
	)
	defer func() {
		pendingMu.Lock()
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		pendingMu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			rel, tracked := files[filepath.Clean(event.Name)]
			if !tracked {
				continue
			}

			pendingMu.Lock()
			pending[rel] = true
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(watchDebounce, func() {
				pendingMu.Lock()
				changed := make([]string, 0, len(pending))
				for p := range pending {
					changed = append(changed, p)
				}
				clear(pending)
				pendingMu.Unlock()

				sort.Strings(changed)
				logger.Debug("files changed, re-checking", "files", changed)
				relint(changed)
			})
			pendingMu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}
