package config

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/PixPMusic/gopher-scales/internal/timing"
	"github.com/fsnotify/fsnotify"
)

// WatchTiming watches the config file and folds note-duration / gap edits
// into the live timing ref, so adjustments made while a drill is sounding
// apply from the next scheduled note. Blocks until ctx is cancelled.
//
// Editors replace rather than rewrite, so the watch is on the directory and
// events are filtered by name.
func WatchTiming(ctx context.Context, path string, live *timing.Live) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			applyTiming(path, live)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Config watch error: %v", err)
		}
	}
}

func applyTiming(path string, live *timing.Live) {
	cfg, err := LoadFrom(path)
	if err != nil {
		log.Printf("Failed to reload config: %v", err)
		return
	}
	if cfg.Defaults.NoteMs == nil && cfg.Defaults.GapMs == nil {
		return
	}

	note, gap := live.Note(), live.Gap()
	if cfg.Defaults.NoteMs != nil && *cfg.Defaults.NoteMs > 0 {
		note = time.Duration(*cfg.Defaults.NoteMs) * time.Millisecond
	}
	if cfg.Defaults.GapMs != nil && *cfg.Defaults.GapMs >= 0 {
		gap = time.Duration(*cfg.Defaults.GapMs) * time.Millisecond
	}
	live.Set(note, gap)
	log.Printf("Timing updated: note=%v gap=%v", note, gap)
}
