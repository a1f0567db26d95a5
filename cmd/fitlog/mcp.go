// ABOUTME: CLI command exposing the log over the Model Context Protocol.
// ABOUTME: Serves tools and resources on stdio for AI assistant access.
package main

import (
	"github.com/spf13/cobra"

	fitmcp "github.com/harperreed/fitlog/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server on stdio",
	Long: `Run a Model Context Protocol server over stdio.

Exposes training data as MCP tools (list/show/delete sessions, records,
volume trend, muscle distribution, exercise library) and resources
(markdown report, JSON summary) so AI assistants can read and manage
your log.

Add to an MCP client config as:

  {"command": "fitlog", "args": ["mcp"]}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := fitmcp.NewServer(appState, book, library)
		if err != nil {
			return err
		}
		return srv.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
