package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rh4001/ChurchToolsAPI/internal/logger"
)

// watchDebounce collapses the burst of events editors emit on save.
var watchDebounce = 500 * time.Millisecond

// fileStamp identifies a file version.
type fileStamp struct {
	modTime time.Time
	size    int64
}

func stampOf(path string) fileStamp {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}
	}
	return fileStamp{modTime: info.ModTime(), size: info.Size()}
}

// watchFile calls onChange after path was modified, until ctx is done.
// The parent directory is watched because the file is replaced by rename
// on write. Changes made by onChange itself do not trigger another call.
func watchFile(ctx context.Context, path string, debounce time.Duration, onChange func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	last := stampOf(target)
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("Watch event %s", event)
			fire = time.After(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)

		case <-fire:
			fire = nil
			current := stampOf(target)
			if current == last || current == (fileStamp{}) {
				continue
			}
			if err := onChange(); err != nil {
				logger.Error("%v", err)
			}
			last = stampOf(target)
		}
	}
}
