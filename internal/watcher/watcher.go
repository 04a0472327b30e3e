// Package watcher notices when another process rewrites the ledger file.
package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// fingerprint is what the watcher compares to decide a file changed.
type fingerprint struct {
	exists  bool
	size    int64
	modTime time.Time
}

func stat(path string) fingerprint {
	info, err := os.Stat(path)
	if err != nil {
		return fingerprint{}
	}
	return fingerprint{exists: true, size: info.Size(), modTime: info.ModTime()}
}

type Watcher struct {
	path         string
	last         fingerprint
	mu           sync.Mutex
	pollInterval time.Duration
	onChange     func(path string)
	stop         chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
}

// New watches a single file. onChange runs on a watcher goroutine once per
// observed change in size, mtime or existence.
func New(path string, pollInterval time.Duration, onChange func(path string)) *Watcher {
	return &Watcher{
		path:         path,
		pollInterval: pollInterval,
		onChange:     onChange,
		stop:         make(chan struct{}),
	}
}

// Snapshot takes the file's current state as the baseline, so that a write
// already accounted for (such as our own save) is not reported.
func (w *Watcher) Snapshot() {
	fp := stat(w.path)
	w.mu.Lock()
	w.last = fp
	w.mu.Unlock()
}

// Start begins watching with fsnotify + polling fallback.
func (w *Watcher) Start() error {
	w.Snapshot()

	// The file is replaced by rename on save, so watch its directory.
	fsw, err := fsnotify.NewWatcher()
	if err == nil {
		if addErr := fsw.Add(filepath.Dir(w.path)); addErr != nil {
			fsw.Close()
		} else {
			w.wg.Add(1)
			go func() {
				defer w.wg.Done()
				defer fsw.Close()
				for {
					select {
					case event, ok := <-fsw.Events:
						if !ok {
							return
						}
						if filepath.Clean(event.Name) == filepath.Clean(w.path) {
							w.check()
						}
					case _, ok := <-fsw.Errors:
						if !ok {
							return
						}
					case <-w.stop:
						return
					}
				}
			}()
		}
	}

	// Polling fallback (always runs as safety net)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.check()
			case <-w.stop:
				return
			}
		}
	}()

	return nil
}

// Stop signals goroutines to exit and waits for them to finish. It is safe
// to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	w.wg.Wait()
}

func (w *Watcher) check() {
	fp := stat(w.path)

	w.mu.Lock()
	changed := fp.exists != w.last.exists ||
		fp.size != w.last.size ||
		!fp.modTime.Equal(w.last.modTime)
	w.last = fp
	w.mu.Unlock()

	if changed && w.onChange != nil {
		w.onChange(w.path)
	}
}
