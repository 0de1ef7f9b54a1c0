package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	sdk "github.com/Arescoreadmin/ares-core/pkg/client"
)

// BaseURLFunc provides the base HTTP API URL (e.g., from env or flag).
type BaseURLFunc func() string

func newSDK(cmd *cobra.Command, baseURL BaseURLFunc) *sdk.Client {
	token, _ := cmd.Flags().GetString("token")
	if token == "" {
		token = os.Getenv("ARES_AUTH_TOKEN")
	}
	return sdk.New(baseURL(), sdk.WithToken(token))
}

// NewLogCommand constructs the `log` command group and subcommands.
func NewLogCommand(baseURL BaseURLFunc) *cobra.Command {
	logCmd := &cobra.Command{Use: "log", Short: "Log operations"}
	logCmd.PersistentFlags().String("token", "", "Bearer token for ingestion (default: ARES_AUTH_TOKEN)")

	logCmd.AddCommand(
		newLogSendCommand(baseURL),
		newLogQueryCommand(baseURL),
	)
	return logCmd
}

// newLogSendCommand constructs the `log send` subcommand.
func newLogSendCommand(baseURL BaseURLFunc) *cobra.Command {
	sendCmd := &cobra.Command{
		Use:   "send",
		Short: "Ingest a log entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, _ := cmd.Flags().GetString("level")
			service, _ := cmd.Flags().GetString("service")
			message, _ := cmd.Flags().GetString("message")
			at, _ := cmd.Flags().GetString("at")

			entry := sdk.Entry{Level: level, Service: service, Message: message}
			if at != "" {
				ts, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid --at; expected RFC3339: %w", err)
				}
				entry.Timestamp = ts
			}

			seqs, err := newSDK(cmd, baseURL).Ingest(cmd.Context(), entry)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "seq:", seqs[0])
			return nil
		},
	}
	sendCmd.Flags().String("level", "INFO", "Log level")
	sendCmd.Flags().String("service", "", "Emitting service name")
	sendCmd.Flags().String("message", "", "Log message")
	sendCmd.Flags().String("at", "", "Entry timestamp (RFC3339, default: server time)")
	return sendCmd
}

// newLogQueryCommand constructs the `log query` subcommand.
func newLogQueryCommand(baseURL BaseURLFunc) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "Query stored log entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, _ := cmd.Flags().GetString("level")
			service, _ := cmd.Flags().GetString("service")

			entries, err := newSDK(cmd, baseURL).Query(cmd.Context(), level, service)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, e := range entries {
				_ = enc.Encode(e)
			}
			return nil
		},
	}
	queryCmd.Flags().String("level", "", "Exact level to match (empty = any)")
	queryCmd.Flags().String("service", "", "Exact service to match (empty = any)")
	return queryCmd
}

// NewExportCommand constructs the `export` command.
func NewExportCommand(baseURL BaseURLFunc) *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Run an export and fetch the rendered artifact",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			out, _ := cmd.Flags().GetString("out")

			data, version, digest, err := sdk.New(baseURL()).Export(cmd.Context(), format)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (version %s, sha256 %s)\n", out, version, digest)
			return nil
		},
	}
	exportCmd.Flags().String("format", "csv", "Artifact format: csv|text")
	exportCmd.Flags().String("out", "", "Output file (default: stdout)")
	return exportCmd
}

// NewStatsCommand constructs the `stats` command.
func NewStatsCommand(baseURL BaseURLFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show server counters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, baseURL()+"/v1/stats", nil)
			if err != nil {
				return err
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("stats: unexpected status %s", resp.Status)
			}
			_, err = io.Copy(cmd.OutOrStdout(), resp.Body)
			return err
		},
	}
}
