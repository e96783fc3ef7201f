package assets

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

const settleDelay = 100 * time.Millisecond

// LevelWatcher reports level files that changed on disk. Bursts of events for
// the same file are collapsed into one, sent after the burst ends.
type LevelWatcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewLevelWatcher(dirs ...string) (*LevelWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &LevelWatcher{
		watcher: w,
		Events:  make(chan string, 16),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *LevelWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

// Changed drains pending events and reports whether any level file changed.
// It never blocks.
func (w *LevelWatcher) Changed() bool {
	changed := false
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return changed
			}
			changed = true
		default:
			return changed
		}
	}
}

func (w *LevelWatcher) run() {
	defer func() {
		close(w.Events)
		close(w.done)
	}()

	// A file is reported once its events have been quiet for settleDelay, so
	// an editor's save burst ends in a single event after the last write.
	pending := make(map[string]struct{})
	settle := time.NewTimer(settleDelay)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !IsLevelFile(event.Name) {
				continue
			}
			pending[event.Name] = struct{}{}
			settle.Reset(settleDelay)
		case <-settle.C:
			for name := range pending {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			clear(pending)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn("level watcher error", "err", err)
		case <-w.closeCh:
			return
		}
	}
}

// IsLevelFile reports whether path has a level file extension.
func IsLevelFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tmx":
		return true
	}
	return false
}
