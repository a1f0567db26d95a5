// ABOUTME: MCP server setup for the fitness log.
// ABOUTME: Wraps the MCP server with log book and catalog access.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/fitlog/internal/catalog"
	"github.com/harperreed/fitlog/internal/logbook"
	"github.com/harperreed/fitlog/internal/models"
)

// Server wraps the MCP server with access to the fitness log.
type Server struct {
	mcpServer *mcp.Server
	state     *models.AppState
	book      *logbook.Book
	catalog   *catalog.Catalog
}

// NewServer creates a new MCP server over the given state.
func NewServer(state *models.AppState, book *logbook.Book, cat *catalog.Catalog) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fitlog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		state:     state,
		book:      book,
		catalog:   cat,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
