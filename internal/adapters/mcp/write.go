package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jot/internal/application"
	"jot/internal/application/commands"
	"jot/internal/domain"
)

// RegisterWriteTools adds all write vault tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, app *application.App) {
	s.AddTool(createNoteTool(), serialized(app, createNoteHandler(app)))
	s.AddTool(createFolderTool(), serialized(app, createFolderHandler(app)))
	s.AddTool(renameNoteTool(), serialized(app, renameNoteHandler(app)))
	s.AddTool(moveNoteToVaultTool(), serialized(app, moveNoteToVaultHandler(app)))
}

// --- create_note ---

func createNoteTool() mcp.Tool {
	return mcp.NewTool("create_note",
		mcp.WithDescription("Create an empty note in the active folder of the current vault, optionally from a template."),
		mcp.WithString("name",
			mcp.Description("Note name; .md is added when missing"),
			mcp.Required(),
		),
		mcp.WithString("template",
			mcp.Description("Template name from the vault's templates directory"),
		),
	)
}

func createNoteHandler(app *application.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		tmpl := req.GetString("template", "")

		result, err := commands.NewCreateNoteCommand(app.Manager, name, tmpl, false).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- create_folder ---

func createFolderTool() mcp.Tool {
	return mcp.NewTool("create_folder",
		mcp.WithDescription("Create an empty folder in the active folder of the current vault."),
		mcp.WithString("name",
			mcp.Description("Folder name"),
			mcp.Required(),
		),
	)
}

func createFolderHandler(app *application.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")

		result, err := commands.NewCreateFolderCommand(app.Manager, name, false).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- rename_note ---

func renameNoteTool() mcp.Tool {
	return mcp.NewTool("rename_note",
		mcp.WithDescription("Rename a note in the active folder. Its alias follows it."),
		mcp.WithString("name",
			mcp.Description("Current note name or alias"),
			mcp.Required(),
		),
		mcp.WithString("new_name",
			mcp.Description("New note name"),
			mcp.Required(),
		),
	)
}

func renameNoteHandler(app *application.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		newName := req.GetString("new_name", "")

		result, err := commands.NewRenameCommand(app, domain.KindNote, name, newName).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- move_note_to_vault ---

func moveNoteToVaultTool() mcp.Tool {
	return mcp.NewTool("move_note_to_vault",
		mcp.WithDescription("Move a note from the active folder of the current vault to the root of another registered vault."),
		mcp.WithString("name",
			mcp.Description("Note name or alias"),
			mcp.Required(),
		),
		mcp.WithString("vault",
			mcp.Description("Destination vault name"),
			mcp.Required(),
		),
	)
}

func moveNoteToVaultHandler(app *application.App) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		dest := req.GetString("vault", "")
		if dest == "" {
			return toolError(fmt.Errorf("vault is required"))
		}

		result, err := commands.NewVaultMoveCommand(app, domain.KindNote, name, dest).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
