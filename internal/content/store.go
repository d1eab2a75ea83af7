package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mediaonstake/agencysite/pkg/logging"
	"github.com/mediaonstake/agencysite/pkg/retry"
)

// Store holds the current site snapshot. Readers never see a partial reload.
type Store struct {
	current atomic.Pointer[Site]
	version atomic.Uint64

	mu        sync.Mutex
	listeners []func(*Site)
}

// NewStore creates a store serving s.
func NewStore(s *Site) *Store {
	st := &Store{}
	st.current.Store(s)
	st.version.Store(1)
	return st
}

// Site returns the current snapshot.
func (st *Store) Site() *Site {
	return st.current.Load()
}

// Version increases on every successful Swap.
func (st *Store) Version() uint64 {
	return st.version.Load()
}

// Swap replaces the snapshot and notifies listeners.
func (st *Store) Swap(s *Site) {
	st.current.Store(s)
	st.version.Add(1)

	st.mu.Lock()
	ls := append([]func(*Site){}, st.listeners...)
	st.mu.Unlock()
	for _, fn := range ls {
		fn(s)
	}
}

// OnChange registers fn to run after each Swap.
func (st *Store) OnChange(fn func(*Site)) {
	st.mu.Lock()
	st.listeners = append(st.listeners, fn)
	st.mu.Unlock()
}

// Ready reports an error until a snapshot is loaded. It fits a health check.
func (st *Store) Ready(context.Context) error {
	if st.Site() == nil {
		return fmt.Errorf("content: not loaded")
	}
	return nil
}

// Watcher reloads a site file into a Store when it changes on disk.
type Watcher struct {
	store    *Store
	path     string
	log      logging.Logger
	debounce time.Duration
	fsw      *fsnotify.Watcher
}

// NewWatcher watches path's directory so editors that replace the file by
// rename are still seen.
func NewWatcher(store *Store, path string, log logging.Logger) (*Watcher, error) {
	if log == nil {
		log = logging.NopLogger{}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("content: watch %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("content: watch: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("content: watch %s: %w", path, err)
	}
	return &Watcher{
		store:    store,
		path:     abs,
		log:      log.With(logging.String("file", abs)),
		debounce: 100 * time.Millisecond,
		fsw:      fsw,
	}, nil
}

// Run blocks until ctx is done. A file that fails to parse is logged and the
// previous snapshot stays live.
func (w *Watcher) Run(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.reload(ctx)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("content watcher error", logging.Err(err))
		}
	}
}

// reload retries while the file is missing, which happens briefly when an
// editor saves by rename. Parse errors are not retried.
func (w *Watcher) reload(ctx context.Context) {
	cfg := retry.Config{MaxRetries: 4, InitialDelay: 25 * time.Millisecond, MaxDelay: 400 * time.Millisecond, Multiplier: 2}
	cfg.RetryIf = func(err error) bool { return errors.Is(err, fs.ErrNotExist) }
	s, err := retry.Do(ctx, cfg, func() (*Site, error) { return LoadFile(w.path) })
	if err != nil {
		w.log.Warn("content reload failed", logging.Err(err))
		return
	}
	w.store.Swap(s)
	w.log.Info("content reloaded", logging.Int64("version", int64(w.store.Version())))
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
