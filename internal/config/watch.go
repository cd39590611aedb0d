package config

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces editor save bursts into one reload.
const debounceWindow = 100 * time.Millisecond

// Watch monitors path and invokes onReload with the freshly loaded
// configuration after each change. The watch is placed on the parent
// directory and filtered by name, so atomic-rename saves (write to a
// temp file, rename over the target) keep being observed. Load
// failures keep the previous configuration; onReload is only called
// with valid configs. The returned stop function releases the watcher.
func Watch(path string, onReload func(Config)) (func(), error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	target := filepath.Clean(path)
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		fsw.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(debounceWindow)
					fire = timer.C
				} else {
					timer.Reset(debounceWindow)
				}

			case <-fire:
				timer = nil
				fire = nil
				if cfg, err := Load(target); err == nil {
					onReload(cfg)
				}

			case _, ok := <-fsw.Errors:
				if !ok {
					return
				}

			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		fsw.Close()
	}, nil
}
