package mcp

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jot/internal/application"
)

const (
	ServerName    = "jot-mcp"
	ServerVersion = "0.1.0"
)

// NewServer creates an MCP server exposing the read and write tools over app.
func NewServer(app *application.App) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
	)

	s.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	RegisterReadTools(s, app)
	RegisterWriteTools(s, app)
	return s
}

var callMu sync.Mutex

// serialized runs one tool call at a time and re-reads the registry and the
// current vault before each.
func serialized(app *application.App, h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		callMu.Lock()
		defer callMu.Unlock()

		if err := app.Manager.Refresh(); err != nil {
			logger(app).Warn("registry refresh failed", slog.String("error", err.Error()))
			return toolError(err)
		}
		result, err := h(ctx, req)
		if result != nil && result.IsError {
			logger(app).Debug("tool failed", slog.String("tool", req.Params.Name))
		}
		return result, err
	}
}

func logger(app *application.App) *slog.Logger {
	if app.Logger == nil {
		return slog.Default()
	}
	return app.Logger
}
