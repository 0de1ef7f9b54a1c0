package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	clientcmd "github.com/Arescoreadmin/ares-core/internal/cmd/client"
	serverrun "github.com/Arescoreadmin/ares-core/internal/cmd/server"
	cfgpkg "github.com/Arescoreadmin/ares-core/internal/config"
	"github.com/Arescoreadmin/ares-core/internal/runtime"
	logpkg "github.com/Arescoreadmin/ares-core/pkg/log"
)

func main() {
	// Respect ARES_LOG_LEVEL for CLI output before any config is loaded.
	parsed, err := logpkg.ParseLevel(os.Getenv("ARES_LOG_LEVEL"))
	if err != nil {
		parsed = logpkg.InfoLevel
	}
	logger := logpkg.NewLogger(logpkg.WithLevel(parsed))
	logpkg.RedirectStdLog(logger)

	rootCmd := &cobra.Command{
		Use:   "arescore",
		Short: "ares-core log runtime CLI",
		Long:  "ares-core is a single-binary log indexing and export service. This CLI manages the server and basic operations.",
	}

	// server start
	serverCmd := &cobra.Command{Use: "server", Short: "Server commands"}
	serverStartCmd := &cobra.Command{
		Use:     "start",
		Short:   "Start the ares-core server",
		Aliases: []string{"run"},
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			dataDir, _ := cmd.Flags().GetString("data-dir")
			httpAddr, _ := cmd.Flags().GetString("http")
			fsyncMode, _ := cmd.Flags().GetString("fsync")
			fsyncIntervalMs, _ := cmd.Flags().GetInt("fsync-interval-ms")
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFormat, _ := cmd.Flags().GetString("log-format")

			cfg, err := cfgpkg.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfgpkg.FromEnv(&cfg); err != nil {
				return err
			}
			if fsyncMode != "" {
				cfg.Fsync = fsyncMode
			}
			if fsyncIntervalMs > 0 {
				cfg.FsyncIntervalMs = fsyncIntervalMs
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if logFormat != "" {
				cfg.LogFormat = logFormat
			}

			mode, err := runtime.ParseFsyncMode(cfg.Fsync)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := serverrun.Run(ctx, serverrun.Options{
				DataDir:       dataDir,
				HTTPAddr:      httpAddr,
				Fsync:         mode,
				FsyncInterval: time.Duration(cfg.FsyncIntervalMs) * time.Millisecond,
				Config:        cfg,
			}); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			// brief delay to allow logs flush
			time.Sleep(100 * time.Millisecond)
			return nil
		},
	}
	serverStartCmd.Flags().String("config", os.Getenv("ARES_CONFIG"), "Config file (JSON or YAML)")
	serverStartCmd.Flags().String("data-dir", "", "Data directory (if not specified, uses OS-specific application data directory)")
	serverStartCmd.Flags().String("http", "", "HTTP listen address (default :8080)")
	serverStartCmd.Flags().String("fsync", "", "Fsync mode: always|interval|never")
	serverStartCmd.Flags().Int("fsync-interval-ms", 0, "When --fsync=interval, group-commit window in ms")
	serverStartCmd.Flags().String("log-level", os.Getenv("ARES_LOG_LEVEL"), "Log level: debug|info|warn|error")
	serverStartCmd.Flags().String("log-format", os.Getenv("ARES_LOG_FORMAT"), "Log format: text|json (default text)")
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)

	// client commands
	rootCmd.AddCommand(clientcmd.NewLogCommand(apiURL))
	rootCmd.AddCommand(clientcmd.NewExportCommand(apiURL))
	rootCmd.AddCommand(clientcmd.NewStatsCommand(apiURL))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func apiURL() string {
	if v := os.Getenv("ARES_HTTP"); v != "" {
		return v
	}
	return "http://127.0.0.1:8080"
}
