package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it changes on disk.
type Watcher interface {
	// Current returns the most recently loaded configuration.
	Current() Config

	// Close stops watching and waits for the event goroutine to exit.
	//
	// Returns:
	//   - error: the error from closing the underlying watcher
	Close() error
}

// watcher is the implementation of the Watcher interface.
type watcher struct {
	mu       sync.Mutex
	path     string
	defaults Config
	current  Config
	onChange func(Config)
	fsw      *fsnotify.Watcher
	done     chan struct{}
}

var _ Watcher = &watcher{}

// Watch loads path and reloads it on every write, create or rename in its
// directory that names the file. The directory is watched rather than the
// file so editors that replace the file on save are still seen. onChange runs
// on the watcher goroutine after each successful reload; failed reloads are
// logged and keep the previous configuration. A file that exists but does not
// decode is watched anyway, starting from defaults, so fixing it takes effect.
//
// Parameters:
//   - path: the config file
//   - defaults: the values kept for fields the file omits
//   - onChange: the function receiving each reloaded configuration (may be nil)
//
// Returns:
//   - Watcher: the running watcher
//   - error: a missing file, an unsupported format or the error from creating the watcher
func Watch(path string, defaults Config, onChange func(Config)) (Watcher, error) {
	cfg, err := Load(path, defaults)
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, ErrUnsupportedFormat) {
		return nil, err
	}
	if err != nil {
		log.Printf("[Config] %v, watching for a fix", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	w := &watcher{
		path:     filepath.Clean(path),
		defaults: defaults,
		current:  cfg,
		onChange: onChange,
		fsw:      fsw,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("[Config] watcher error: %v", err)
		}
	}
}

// reload reads the file again and publishes it when it decodes.
func (w *watcher) reload() {
	cfg, err := Load(w.path, w.defaults)
	if err != nil {
		log.Printf("[Config] reload %s: %v", w.path, err)
		return
	}

	w.mu.Lock()
	w.current = cfg
	w.mu.Unlock()

	log.Printf("[Config] reloaded %s", w.path)
	if w.onChange != nil {
		w.onChange(cfg)
	}
}

func (w *watcher) Current() Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

func (w *watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
