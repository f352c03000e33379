package assets

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 100 * time.Millisecond

// ShaderWatcher reports shader files that change below a directory on disk. Bursts of events for
// the same file (editors often write, truncate and rename) are coalesced into one change.
type ShaderWatcher struct {
	watcher  *fsnotify.Watcher
	root     string
	debounce time.Duration
	changes  chan string

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// ShaderWatcherOption is a functional option for configuring a ShaderWatcher.
type ShaderWatcherOption func(*ShaderWatcher)

// WithDebounce sets how long the watcher waits for a burst of events to settle before reporting.
//
// Parameters:
//   - d: settle time (default 100ms); values <= 0 keep the default
//
// Returns:
//   - ShaderWatcherOption: option function to apply
func WithDebounce(d time.Duration) ShaderWatcherOption {
	return func(w *ShaderWatcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// NewShaderWatcher starts watching root and every directory below it.
//
// Parameters:
//   - root: the shader root on disk, e.g. "assets/shaders"
//   - options: functional options for the watcher
//
// Returns:
//   - *ShaderWatcher: the running watcher; Close it when done
//   - error: error if the directories cannot be watched
func NewShaderWatcher(root string, options ...ShaderWatcherOption) (*ShaderWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &ShaderWatcher{
		watcher:  fw,
		root:     filepath.Clean(root),
		debounce: defaultDebounce,
		changes:  make(chan string, 16),
		done:     make(chan struct{}),
	}
	for _, opt := range options {
		opt(w)
	}

	err = filepath.WalkDir(w.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(p)
		}
		return nil
	})
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", root, err)
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Changes delivers slash-separated paths relative to the root, suitable for ParseShaderPath.
// The channel is closed by Close.
//
// Returns:
//   - <-chan string: changed shader paths
func (w *ShaderWatcher) Changes() <-chan string {
	return w.changes
}

// Close stops the watcher and closes the Changes channel. Safe to call more than once.
//
// Returns:
//   - error: error from the underlying watcher
func (w *ShaderWatcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
		close(w.changes)
	})
	return err
}

func (w *ShaderWatcher) run() {
	defer w.wg.Done()

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = make(map[string]struct{})
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				if err := w.watcher.Add(event.Name); err != nil {
					log.Printf("[Assets] watch %s: %v", event.Name, err)
				}
				continue
			}
			rel, err := filepath.Rel(w.root, event.Name)
			if err != nil {
				continue
			}
			pending[filepath.ToSlash(rel)] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}
		case <-timerC:
			timer, timerC = nil, nil
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			clear(pending)
			slices.Sort(paths)
			for _, p := range paths {
				select {
				case w.changes <- p:
				case <-w.done:
					return
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[Assets] watch error: %v", err)
		}
	}
}
