package layout

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/spatialnav/internal/domain/entity"
	"github.com/bnema/spatialnav/internal/logging"
)

const defaultDebounce = 100 * time.Millisecond

// ChangeFunc receives a freshly loaded layout, or the error that prevented loading it.
type ChangeFunc func(ctx context.Context, l *entity.Layout, err error)

// Watcher reloads a layout file whenever it is written, created or renamed into place.
// The parent directory is watched so editors that replace the file atomically are handled.
type Watcher struct {
	path     string
	debounce time.Duration
	onChange ChangeFunc
}

// NewWatcher creates a watcher for path. It does nothing until Run is called.
func NewWatcher(path string, onChange ChangeFunc) *Watcher {
	return &Watcher{path: filepath.Clean(path), debounce: defaultDebounce, onChange: onChange}
}

// SetDebounce sets how long a burst of events is coalesced before reloading.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run blocks until ctx is cancelled or the underlying watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	log := logging.FromContext(ctx).With().Str("layout", w.path).Logger()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create layout watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	log.Debug().Msg("watching layout")

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Trace().Str("op", event.Op.String()).Msg("layout event")
			timer.Reset(w.debounce)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("layout watcher error")
		case <-timer.C:
			l, err := Load(w.path)
			if err != nil {
				log.Warn().Err(err).Msg("layout reload failed")
			} else {
				log.Info().Int("elements", len(l.Elements)).Msg("layout reloaded")
			}
			w.onChange(ctx, l, err)
		}
	}
}
