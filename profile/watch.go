// profile/watch.go
package profile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"boardcfg-go/types"
)

// Watcher reloads a board document whenever the file changes on disk.
// The parent directory is watched so editor rename-and-replace saves are
// still seen.
type Watcher struct {
	Path     string
	Cooldown time.Duration // minimum gap between reloads
}

// Start blocks until ctx is cancelled, invoking onChange with the reloaded
// spec (or the load error) after each change to the file.
func (w Watcher) Start(ctx context.Context, onChange func(types.BoardSpec, error)) error {
	if w.Cooldown <= 0 {
		w.Cooldown = 500 * time.Millisecond
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	abs, err := filepath.Abs(w.Path)
	if err != nil {
		return err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	var last time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if time.Since(last) < w.Cooldown {
				continue
			}
			last = time.Now()
			spec, err := Load(abs)
			if onChange != nil {
				onChange(spec, err)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			if onChange != nil {
				onChange(types.BoardSpec{}, err)
			}
		}
	}
}
