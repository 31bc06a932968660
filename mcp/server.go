package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/mkress81/arbscout/config"
	"github.com/mkress81/arbscout/internal/engine"
)

// EngineFactory builds a fresh engine (with its own adapter session) and
// the category map for one tool call. Each call gets its own engine so
// concurrent MCP requests never share an adapter.
type EngineFactory func() (*engine.Engine, *config.CategoryMap, error)

// Serve starts the MCP stdio server with all tools registered.
func Serve(factory EngineFactory) error {
	s := newServer(factory)
	return server.ServeStdio(s)
}

func newServer(factory EngineFactory) *server.MCPServer {
	s := server.NewMCPServer(
		"arbscout",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	registerTools(s, factory)
	return s
}
