// ABOUTME: MCP server setup for the stride scoring engine.
// ABOUTME: Wraps the MCP server with the tracker pipeline and leaderboard source.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/stride/internal/models"
	"github.com/harperreed/stride/internal/tracker"
)

// LeaderboardSource supplies unranked leaderboard entries for a period.
type LeaderboardSource interface {
	Leaderboard(ctx context.Context, period, date string) ([]models.LeaderboardEntry, error)
}

// Server wraps the MCP server with scoring pipeline access.
type Server struct {
	mcpServer *mcp.Server
	tracker   *tracker.Tracker
	boards    LeaderboardSource
	userID    string
}

// NewServer creates an MCP server bound to one user's tracker.
func NewServer(t *tracker.Tracker, boards LeaderboardSource, userID string) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "stride",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		tracker:   t,
		boards:    boards,
		userID:    userID,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
