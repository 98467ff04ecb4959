package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/unitbot/internal/core/domain"
)

const uriScheme = "unitbot://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "units",
		Name:        "units",
		Description: "Catalog of recognised units with aliases and counterparts",
		MIMEType:    "application/json",
	}, s.handleUnitsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "units/{alias}",
		Name:        "unit",
		Description: "A single unit, looked up by any of its aliases",
		MIMEType:    "application/json",
	}, s.handleUnitResource)
}

func (s *Server) handleUnitsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, catalog())
}

func (s *Server) handleUnitResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	alias := extractAlias(req.Params.URI)
	if alias == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	unit, ok := domain.LookupAlias(alias)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, unitOutput(unit))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractAlias returns the alias from unitbot://units/{alias}.
func extractAlias(uri string) string {
	const prefix = uriScheme + "units/"
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}
