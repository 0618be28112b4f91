package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reparses path every time it is written or recreated and reports the
// result through onChange. Parse failures are reported with the error and the
// previous tuning stays in effect on the caller's side.
//
// The parent directory is watched rather than the file so editors that save
// via rename keep triggering events. Call the returned stop func to release
// the watcher.
func Watch(path string, onChange func(LanderConfig, error)) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					onChange(ParseFile(abs))
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				onChange(LanderConfig{}, fmt.Errorf("config watcher: %w", err))
			}
		}
	}()

	return func() error {
		err := watcher.Close()
		<-done
		return err
	}, nil
}
