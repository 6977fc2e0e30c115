// ABOUTME: MCP server setup for the habit tracker.
// ABOUTME: Wraps the MCP server with the tracker service and the store.
package mcp

import (
	"context"

	"github.com/fbwogus456-hub/levelup/internal/storage"
	"github.com/fbwogus456-hub/levelup/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with tracker access.
type Server struct {
	mcpServer *mcp.Server
	tracker   *tracker.Tracker
	store     *storage.Store
}

// NewServer creates a new MCP server over an opened tracker.
func NewServer(tr *tracker.Tracker, store *storage.Store) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "levelup",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		tracker:   tr,
		store:     store,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
