package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerEntriesResource(srv, svc)
	registerEntryTemplate(srv, svc)
}

func registerEntriesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"freewrite://entries",
		"Entries",
		mcp.WithResourceDescription("Every saved freewrite entry, most recently updated first."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		entries, err := svc.ListEntries(ctx, 0)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"entries": entries,
			"count":   len(entries),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerEntryTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"freewrite://entries/{id}",
		"Entry",
		mcp.WithTemplateDescription("A single entry including its full text."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request.Params.Arguments, "id")
		if id == "" {
			return nil, fmt.Errorf("entry id is required")
		}

		dto, err := svc.EntryByID(ctx, id)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"entry": dto,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

// templateArg reads a URI template variable, which arrives either as a
// string or as a one-element list depending on the matcher.
func templateArg(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
