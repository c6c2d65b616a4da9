package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/molkit/internal/adapters/driving/mcp"
	"github.com/custodia-labs/molkit/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can convert
SMILES and resolve data paths.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  molkit mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  molkit mcp serve --port 8080

  # HTTP mode, at most 5 requests per second
  molkit mcp serve --port 8080 --rate 5

Changes to log.level in config.toml take effect while the server runs.`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Float64("rate", 0, "HTTP requests per second (0 = unlimited)")
	mcpServeCmd.Flags().Int("burst", 10, "HTTP request burst size when --rate is set")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Notation:      notationService,
		Paths:         dataPaths,
		History:       historyService,
		RecordHistory: recordDefault,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if configWatcher != nil {
		go watchConfig(cmd.Context())
	}

	if port > 0 {
		rps, err := cmd.Flags().GetFloat64("rate")
		if err != nil {
			return fmt.Errorf("getting rate flag: %w", err)
		}
		burst, err := cmd.Flags().GetInt("burst")
		if err != nil {
			return fmt.Errorf("getting burst flag: %w", err)
		}
		server.SetRateLimit(rps, burst)

		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// watchConfig applies log level edits until ctx is done.
func watchConfig(ctx context.Context) {
	if err := configWatcher.Watch(ctx, reloadLogLevel); err != nil {
		logger.Warn("config watch stopped: %v", err)
	}
}

// reloadLogLevel applies the stored log level to the running process.
func reloadLogLevel() {
	if settingsService == nil {
		return
	}
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("reading settings: %v", err)
		return
	}
	if err := logger.SetLevel(settings.Log.Level); err != nil {
		logger.Warn("config log.level: %v", err)
		return
	}
	logger.Info("log level set to %s", settings.Log.Level)
}
