package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerDataResource(srv, svc)
	registerFieldTemplate(srv, svc)
	registerThemeResource(srv, svc)
}

func registerDataResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"academia://data",
		"App Data",
		mcp.WithResourceDescription("Everything stored for the active user."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		raw, err := svc.Data("")
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, raw)
	})
}

func registerFieldTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"academia://data/{field}",
		"App Data Field",
		mcp.WithTemplateDescription("One top-level field of the active user's data, such as todos or meData."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		field := argument(request.Params.Arguments, "field")
		if field == "" {
			return nil, fmt.Errorf("field name is required")
		}
		raw, err := svc.Data(field)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, raw)
	})
}

func registerThemeResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"academia://theme",
		"Theme",
		mcp.WithResourceDescription("The active theme with its resolved palette and CSS."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		st, err := svc.Theme()
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, st)
	})
}

// argument reads a template variable, which arrives as a string or, for
// exploded variables, a list.
func argument(args map[string]any, name string) string {
	switch v := args[name].(type) {
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
