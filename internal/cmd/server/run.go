package serverrun

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	cfgpkg "github.com/Arescoreadmin/ares-core/internal/config"
	"github.com/Arescoreadmin/ares-core/internal/runtime"
	httpserver "github.com/Arescoreadmin/ares-core/internal/server/http"
	pebblestore "github.com/Arescoreadmin/ares-core/internal/storage/pebble"
	logpkg "github.com/Arescoreadmin/ares-core/pkg/log"
)

// Options for starting the server process.
type Options struct {
	DataDir       string
	HTTPAddr      string
	Fsync         pebblestore.FsyncMode
	FsyncInterval time.Duration
	Config        cfgpkg.Config
}

// Run opens the store, starts the HTTP server, and blocks until ctx is
// cancelled or SIGINT/SIGTERM arrives.
func Run(ctx context.Context, opts Options) error {
	// Layer a local signal context over the provided one so callers that
	// pass context.Background() still get clean shutdown on signals.
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.DataDir == "" {
		opts.DataDir = opts.Config.DataDir
	}
	if opts.DataDir == "" {
		opts.DataDir = cfgpkg.DefaultDataDir()
	}
	opts.Config.DataDir = opts.DataDir
	if opts.HTTPAddr == "" {
		opts.HTTPAddr = opts.Config.HTTPAddr
	}

	storeDir := filepath.Join(opts.DataDir, "store")
	rt, err := runtime.Open(runtime.Options{
		DataDir:       storeDir,
		Fsync:         opts.Fsync,
		FsyncInterval: opts.FsyncInterval,
		Config:        opts.Config,
	})
	if err != nil {
		return err
	}
	defer rt.Close()

	procLogger, err := logpkg.ApplyConfig(&logpkg.Config{
		Level:  opts.Config.LogLevel,
		Format: opts.Config.LogFormat,
	})
	if err != nil {
		procLogger = logpkg.NewLogger()
	}

	// Redirect stdlib logs (e.g. Pebble) to our logger.
	logpkg.RedirectStdLog(procLogger)

	procLogger.Info("starting ares-core server",
		logpkg.Str("http", opts.HTTPAddr),
		logpkg.Str("data_dir", opts.DataDir),
		logpkg.Str("fsync", opts.Config.Fsync),
		logpkg.Bool("auth", opts.Config.AuthToken != ""),
		logpkg.Bool("signing", opts.Config.SigningKey != ""),
		logpkg.Bool("upload", opts.Config.UploadEnabled()),
	)

	hsrv := httpserver.New(rt, procLogger)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := hsrv.ListenAndServe(sctx, opts.HTTPAddr); err != nil && sctx.Err() == nil {
			log.Printf("http error: %v", err)
		}
	}()

	<-sctx.Done()
	// Shut the server down before closing the runtime to avoid handing
	// in-flight requests a closed store.
	hsrv.Close()
	wg.Wait()
	return nil
}
