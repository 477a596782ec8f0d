package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docdex/internal/adapters/driving/mcp"
)

var mcpPort int

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server",
	Long:  `Commands for running docdex as an MCP server for AI assistants.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Starts a Model Context Protocol server that exposes the indexed
corpus to AI assistants.

By default the server speaks JSON-RPC over stdio, which is what MCP
clients such as Claude Desktop expect:

  {
    "mcpServers": {
      "docdex": {
        "command": "docdex",
        "args": ["mcp", "serve", "--root", "/path/to/docs"]
      }
    }
  }

With --port the server listens on HTTP instead, using the streamable
HTTP transport.`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "serve over HTTP on this port instead of stdio")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := ensureIndex(ctx); err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Search:  searchService,
		Library: libraryService,
		Indexer: indexOrchestrator,
	})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	if mcpPort > 0 {
		addr := fmt.Sprintf(":%d", mcpPort)
		cmd.Printf("MCP server listening on %s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	// Stdio mode: stdout carries the protocol, so nothing else may
	// write to it.
	return server.Run(ctx)
}
