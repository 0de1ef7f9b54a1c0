package runtime

import (
	"context"
	"errors"
	"fmt"
	"time"

	cfgpkg "github.com/Arescoreadmin/ares-core/internal/config"
	"github.com/Arescoreadmin/ares-core/internal/entrylog"
	pebblestore "github.com/Arescoreadmin/ares-core/internal/storage/pebble"
)

// Options for building the Runtime.
type Options struct {
	DataDir       string
	Fsync         pebblestore.FsyncMode
	FsyncInterval time.Duration
	Config        cfgpkg.Config
}

// Runtime owns the storage handle and the entry store built on it.
type Runtime struct {
	db     *pebblestore.DB
	store  *entrylog.Store
	config cfgpkg.Config
}

// Open initializes the underlying storage and returns a Runtime.
func Open(opts Options) (*Runtime, error) {
	db, err := pebblestore.Open(pebblestore.Options{
		DataDir:       opts.DataDir,
		Fsync:         opts.Fsync,
		FsyncInterval: opts.FsyncInterval,
	})
	if err != nil {
		return nil, err
	}
	store, err := entrylog.Open(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Runtime{db: db, store: store, config: opts.Config}, nil
}

// Close closes underlying resources.
func (r *Runtime) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// CheckHealth performs a simple storage probe.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	if r.db == nil {
		return errors.New("db not open")
	}
	it, err := r.db.NewIter(nil)
	if err != nil {
		return err
	}
	return it.Close()
}

// Store returns the entry store.
func (r *Runtime) Store() *entrylog.Store { return r.store }

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }

// ParseFsyncMode maps a config fsync string to a storage mode.
func ParseFsyncMode(s string) (pebblestore.FsyncMode, error) {
	switch s {
	case "", "always":
		return pebblestore.FsyncModeAlways, nil
	case "interval":
		return pebblestore.FsyncModeInterval, nil
	case "never":
		return pebblestore.FsyncModeNever, nil
	default:
		return pebblestore.FsyncModeUnspecified, fmt.Errorf("invalid fsync mode %q; use always|interval|never", s)
	}
}
