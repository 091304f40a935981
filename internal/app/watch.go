package app

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/unjucks/unjucks/internal/debug"
	"github.com/unjucks/unjucks/internal/template/generator"
)

// WatchOptions contains options for watch mode.
type WatchOptions struct {
	// Generate configures each regeneration run.
	Generate GenerateOptions
	// Debounce is the quiet period after a filesystem event before
	// regeneration runs.
	Debounce time.Duration
	// OnRun is invoked after every generation run with its result.
	OnRun func(result *generator.Result, err error)
}

// Watch regenerates the template whenever its directory changes. It
// runs once immediately, then blocks until the context is canceled.
func Watch(ctx context.Context, opts WatchOptions) error {
	if opts.Debounce <= 0 {
		opts.Debounce = 300 * time.Millisecond
	}

	tpl, err := LoadTemplate(opts.Generate)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return NewWatchError("failed to create filesystem watcher", err)
	}
	defer watcher.Close()

	if err := watchRecursive(watcher, tpl.RootPath); err != nil {
		return err
	}
	debug.Debug("[watch] Watching %s", tpl.RootPath)

	runOnce := func() {
		result, err := Generate(ctx, opts.Generate)
		if opts.OnRun != nil {
			opts.OnRun(result, err)
		}
	}

	runOnce()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			debug.Debug("[watch] Event: %s", event)

			// New directories need their own watch.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchRecursive(watcher, event.Name); err != nil {
						return err
					}
				}
			}

			if timer == nil {
				timer = time.NewTimer(opts.Debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(opts.Debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			runOnce()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return NewWatchError("filesystem watcher failed", err)
		}
	}
}

// watchRecursive adds dir and all its subdirectories to the watcher.
func watchRecursive(watcher *fsnotify.Watcher, dir string) error {
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return NewWatchError("failed to watch template directory", err)
	}
	return nil
}
