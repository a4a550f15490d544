// Package watch reloads the address dataset when its CSV file changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"address-resolver/internal/service"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// DefaultDebounce collapses the burst of events an editor or copy produces into one reload.
const DefaultDebounce = 500 * time.Millisecond

// Reloader rebuilds the dataset from its source.
type Reloader interface {
	Reload(context.Context) (*service.ReloadSummary, error)
}

// Watcher monitors a dataset file and triggers a reload after it settles.
type Watcher struct {
	path     string
	reloader Reloader
	debounce time.Duration
}

// New creates a watcher for the dataset file at path. A non-positive debounce uses
// DefaultDebounce.
func New(path string, reloader Reloader, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{path: filepath.Clean(path), reloader: reloader, debounce: debounce}
}

// Start watches the file's directory until ctx is done. The directory is watched rather
// than the file so that atomic replace-by-rename is seen.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return err
	}

	log.Info().Str("path", w.path).Msg("watching dataset for changes")

	go func() {
		defer watcher.Close()

		timer := time.NewTimer(w.debounce)
		if !timer.Stop() {
			<-timer.C
		}

		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if w.relevant(evt) {
					timer.Reset(w.debounce)
				}
			case <-timer.C:
				w.reload(ctx)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error().Err(err).Msg("dataset watcher error")
			}
		}
	}()
	return nil
}

func (w *Watcher) relevant(evt fsnotify.Event) bool {
	if filepath.Clean(evt.Name) != w.path {
		return false
	}
	return evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (w *Watcher) reload(ctx context.Context) {
	if _, err := w.reloader.Reload(ctx); err != nil {
		log.Warn().Err(err).Str("path", w.path).Msg("dataset changed but reload failed; previous dataset kept")
	}
}
