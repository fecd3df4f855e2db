// Package watch re-runs the rewrite pipeline when sources change.
//
// A Watcher registers every non-ignored directory under its base with
// fsnotify, filters events down to source files, and coalesces bursts of
// events (an editor writing a temp file and renaming it, a branch checkout)
// into a single callback once the debounce window has been quiet.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"github.com/yaklabco/styledid/internal/logging"
	"github.com/yaklabco/styledid/pkg/langdetect"
)

// DefaultDebounce is the quiet period used when Config.Debounce is unset.
const DefaultDebounce = 300 * time.Millisecond

// ErrAlreadyStarted is returned by a second call to Run.
var ErrAlreadyStarted = errors.New("watch: Run called more than once")

// Config holds the parameters for a Watcher.
type Config struct {
	// BaseDir is the root directory to watch. Empty means the process
	// working directory.
	BaseDir string

	// Extensions selects the files whose changes are reported
	// (lowercase, with leading dot). Empty reports every file.
	Extensions []string

	// Ignore are glob patterns, relative to BaseDir, for paths that never
	// trigger callbacks. "**" crosses directory boundaries.
	Ignore []string

	// IgnoreDirs are absolute directories excluded from watching, such as
	// an output directory nested under BaseDir.
	IgnoreDirs []string

	// Debounce is the quiet period after the last event before OnChange
	// fires. Zero or negative values use DefaultDebounce.
	Debounce time.Duration

	// OnChange receives the sorted, deduplicated absolute paths that were
	// created or written.
	// It runs on the event loop; events arriving meanwhile are queued and
	// debounced again afterwards. A nil callback is a no-op.
	OnChange func(ctx context.Context, changed []string) error
}

// Watcher monitors a directory tree and fires a debounced callback when
// source files change. Run must be called at most once.
type Watcher struct {
	cfg        Config
	fsw        *fsnotify.Watcher
	baseDir    string
	debounce   time.Duration
	extensions map[string]struct{}
	ignores    []glob.Glob
	ignoreDirs []string
	started    atomic.Bool
	closeOnce  sync.Once
	closeErr   error
}

// New creates a Watcher and registers every non-ignored directory under
// BaseDir. The caller must call Run or Close to release the watcher.
func New(cfg Config) (*Watcher, error) {
	baseDir := cfg.BaseDir
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("watch: determine working directory: %w", err)
		}
		baseDir = wd
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve base directory: %w", err)
	}
	info, err := os.Stat(absBase)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch: %s is not a directory", absBase)
	}

	w := &Watcher{
		cfg:        cfg,
		baseDir:    absBase,
		debounce:   cfg.Debounce,
		extensions: make(map[string]struct{}, len(cfg.Extensions)),
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	for _, ext := range cfg.Extensions {
		w.extensions[strings.ToLower(ext)] = struct{}{}
	}
	for _, pattern := range cfg.Ignore {
		g, err := glob.Compile(filepath.ToSlash(pattern), '/')
		if err != nil {
			return nil, fmt.Errorf("watch: invalid ignore pattern %q: %w", pattern, err)
		}
		w.ignores = append(w.ignores, g)
	}
	for _, dir := range cfg.IgnoreDirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("watch: resolve ignored directory %q: %w", dir, err)
		}
		w.ignoreDirs = append(w.ignoreDirs, abs)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}
	w.fsw = fsw

	if err := w.addTree(w.baseDir); err != nil {
		_ = w.Close()
		return nil, err
	}

	return w, nil
}

// BaseDir returns the absolute directory being watched.
func (w *Watcher) BaseDir() string {
	return w.baseDir
}

// Close releases the underlying fsnotify watcher. It is safe to call more
// than once and is called by Run on exit.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		w.closeErr = w.fsw.Close()
	})
	return w.closeErr
}

// Run processes events until ctx is cancelled. It returns nil on
// cancellation and an error when the watcher breaks irrecoverably.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	defer func() {
		if err := w.Close(); err != nil {
			logging.FromContext(ctx).Warn("close watcher", logging.FieldError, err)
		}
	}()

	logger := logging.FromContext(ctx)

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watch: event channel closed unexpectedly")
			}
			if !w.handle(ctx, evt) {
				continue
			}
			pending[evt.Name] = struct{}{}
			timer.Reset(w.debounce)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			changed := make([]string, 0, len(pending))
			for path := range pending {
				changed = append(changed, path)
			}
			clear(pending)
			slices.Sort(changed)

			logger.Debug("sources changed", logging.FieldFiles, len(changed))
			if w.cfg.OnChange != nil {
				if err := w.cfg.OnChange(ctx, changed); err != nil {
					logger.Error("watch callback failed", logging.FieldError, err)
				}
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watch: error channel closed unexpectedly")
			}
			if isFatalError(err) {
				return fmt.Errorf("watch: fatal fsnotify error: %w", err)
			}
			logger.Warn("fsnotify error", logging.FieldError, err)
		}
	}
}

// handle registers new directories and reports whether evt names a source
// file change worth reporting.
func (w *Watcher) handle(ctx context.Context, evt fsnotify.Event) bool {
	// Removals and renames leave nothing to rewrite.
	if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) {
		return false
	}

	if evt.Has(fsnotify.Create) {
		if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
			if err := w.addTree(evt.Name); err != nil {
				logging.FromContext(ctx).Warn("watch new directory", logging.FieldPath, evt.Name, logging.FieldError, err)
			}
			return false
		}
	}

	return w.wantsFile(evt.Name)
}

// addTree registers root and every non-ignored directory below it.
func (w *Watcher) addTree(root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) || errors.Is(walkErr, fs.ErrNotExist) {
				return nil
			}
			return walkErr
		}
		if !entry.IsDir() {
			return nil
		}
		if path != w.baseDir && w.skipDir(path) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("add %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch: register directories: %w", err)
	}
	return nil
}

func (w *Watcher) rel(path string) string {
	rel, err := filepath.Rel(w.baseDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func (w *Watcher) skipDir(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return true
	}
	for _, dir := range w.ignoreDirs {
		if path == dir {
			return true
		}
	}
	rel := w.rel(path)
	return langdetect.IsVendored(rel+"/") || w.ignored(rel, true)
}

func (w *Watcher) wantsFile(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	if len(w.extensions) > 0 {
		if _, ok := w.extensions[strings.ToLower(filepath.Ext(path))]; !ok {
			return false
		}
	}
	for _, dir := range w.ignoreDirs {
		if strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return false
		}
	}
	return !w.ignored(w.rel(path), false)
}

// ignored matches rel and its base name against the ignore globs.
func (w *Watcher) ignored(rel string, dir bool) bool {
	base := rel
	if i := strings.LastIndexByte(rel, '/'); i >= 0 {
		base = rel[i+1:]
	}
	for _, g := range w.ignores {
		if g.Match(rel) || g.Match(base) || (dir && g.Match(rel+"/")) {
			return true
		}
	}
	return false
}
