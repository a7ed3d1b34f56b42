package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jot/internal/application"
	"jot/internal/application/commands"
	"jot/internal/vault"
)

// RegisterReadTools adds all read-only vault tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, app *application.App) {
	s.AddTool(vaultsTool(), serialized(app, vaultsHandler(app)))
	s.AddTool(treeTool(), serialized(app, treeHandler(app)))
	s.AddTool(readNoteTool(), serialized(app, readNoteHandler(app)))
	s.AddTool(findTool(), serialized(app, findHandler(app)))
}

// --- vaults ---

func vaultsTool() mcp.Tool {
	return mcp.NewTool("vaults",
		mcp.WithDescription("List the registered vaults with their locations. The current vault is marked with *."),
	)
}

func vaultsHandler(app *application.App) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewListVaultsCommand(app.Manager).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntries(result.Vaults, formatVault)
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the active folder of the current vault as a tree."),
	)
}

func treeHandler(app *application.App) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewListCommand(app.Manager).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s\n", result.Location.Name())
		sb.WriteString(result.Tree(vault.Paint{}))
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- read_note ---

func readNoteTool() mcp.Tool {
	return mcp.NewTool("read_note",
		mcp.WithDescription("Read the content of a note in the active folder, by name or alias."),
		mcp.WithString("name",
			mcp.Description("Note name, with or without the .md extension"),
			mcp.Required(),
		),
	)
}

func readNoteHandler(app *application.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		if name == "" {
			return toolError(fmt.Errorf("name is required"))
		}

		result, err := commands.NewShowNoteCommand(app, name).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Content), nil
	}
}

// --- find ---

func findTool() mcp.Tool {
	return mcp.NewTool("find",
		mcp.WithDescription("Find notes and folders in the current vault. Patterns with *, ?, [ or { are globs over vault-relative paths; anything else is matched fuzzily."),
		mcp.WithString("pattern",
			mcp.Description("Glob or search text"),
			mcp.Required(),
		),
		mcp.WithString("type",
			mcp.Description("Restrict results to note or folder"),
			mcp.Enum("note", "folder"),
		),
	)
}

func findHandler(app *application.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		pattern := req.GetString("pattern", "")
		if pattern == "" {
			return toolError(fmt.Errorf("pattern is required"))
		}

		matches, err := commands.NewFindCommand(app.Manager, pattern, req.GetString("type", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(matches) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}
		return formatEntries(matches, formatMatch)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntries[T any](entries []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entries) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatVault(v application.VaultEntry) string {
	marker := " "
	if v.Current {
		marker = "*"
	}
	return fmt.Sprintf("%s %s  %s", marker, v.Name, v.Path)
}

func formatMatch(m commands.FindMatch) string {
	return fmt.Sprintf("%s  %s", m.Kind, m.Path)
}
