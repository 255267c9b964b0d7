package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start an MCP server exposing menucli tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes menu inspection
and activation as tools. AI agents can call tools directly without shell
overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  menucli mcp
  menucli mcp --transport streamable-http --port 8080
  menucli mcp --cache-ttl 0`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	mcpCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	mcpCmd.Flags().Int("cache-ttl", 500, "Menu tree cache TTL in milliseconds (0 to disable)")
}

func runMCP(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	// Flags win; unset flags fall back to the config file.
	if cfg != nil {
		if !cmd.Flags().Changed("transport") && cfg.MCP.Transport != "" {
			transport = cfg.MCP.Transport
		}
		if !cmd.Flags().Changed("port") && cfg.MCP.Port != 0 {
			port = cfg.MCP.Port
		}
		if !cmd.Flags().Changed("cache-ttl") {
			cacheTTLMs = cfg.MCP.CacheTTLMS
		}
	}

	mcfg := mcpConfig{
		Transport: transport,
		Port:      port,
		CacheTTL:  time.Duration(cacheTTLMs) * time.Millisecond,
	}

	srv, err := newMCPServer(mcfg)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	return srv.serve(mcfg)
}
