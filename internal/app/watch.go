package app

import (
	"context"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/kyaoi/chronoline/internal/config"
	"github.com/kyaoi/chronoline/internal/source"
	"github.com/kyaoi/chronoline/internal/timeline"
)

// watchSource reloads the configured events on every relevant file change
// and hands the result to apply. Load errors are logged and the previous
// events stay in place. It returns when ctx is done.
func watchSource(ctx context.Context, cfg *config.Config, apply func(*timeline.Timeline)) error {
	dirs, err := source.WatchPaths(cfg.Data, cfg.Include)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !source.Affects(cfg.Data, cfg.Include, event.Name) {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						log.Printf("watching %s: %v", event.Name, err)
					}
				}
			}
			tl, err := loadTimeline(cfg)
			if err != nil {
				log.Printf("reloading events: %v", err)
				continue
			}
			log.Printf("reloaded %d events from %s", tl.Len(), cfg.Data)
			apply(tl)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher: %v", err)
		}
	}
}
