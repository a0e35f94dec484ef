package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListEntriesTool(srv, svc)
	registerSearchEntriesTool(srv, svc)
	registerGetEntryTool(srv, svc)
	registerCreateEntryTool(srv, svc)
	registerRenameEntryTool(srv, svc)
	registerDeleteEntryTool(srv, svc)
	registerReportTool(srv, svc)
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List saved entries, most recently updated first. Content is abbreviated to a preview."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default all)."),
			mcp.Min(1),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := request.GetInt("limit", 0)
		entries, err := svc.ListEntries(ctx, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"entries": entries,
			"count":   len(entries),
		})
	})
}

func registerSearchEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_entries",
		mcp.WithDescription("Search entries by case-insensitive substring match across content and titles."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Case-insensitive search text."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default 20)."),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := request.GetInt("limit", 20)

		results, err := svc.SearchEntries(ctx, query, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   query,
			"limit":   limit,
			"results": results,
			"count":   len(results),
		})
	})
}

func registerGetEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_entry",
		mcp.WithDescription("Fetch a single entry, including its full text, by identifier or unique id prefix."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to fetch."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.EntryByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerCreateEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_entry",
		mcp.WithDescription("Save a new entry using the current font, size and theme preferences."),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Full text of the entry."),
		),
		mcp.WithString("title",
			mcp.Description("Optional title; defaults to Untitled."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.CreateEntry(ctx, args.Title, args.Content)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerRenameEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"rename_entry",
		mcp.WithDescription("Change the title of an entry. A blank title resets it to Untitled."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to rename."),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("New title."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		title := request.GetString("title", "")

		dto, err := svc.RenameEntry(ctx, id, title)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_entry",
		mcp.WithDescription("Permanently delete an entry."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to delete."),
		),
		mcp.WithDestructiveHintAnnotation(true),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.DeleteEntry(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"deleted": dto,
		})
	})
}

func registerReportTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"writing_report",
		mcp.WithDescription("Summarise entries and word counts per day over a recent window."),
		mcp.WithString("window",
			mcp.Description("Window such as 1w, 3d or 1w2d (default 1w)."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		report, err := svc.Report(ctx, request.GetString("window", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(report)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
