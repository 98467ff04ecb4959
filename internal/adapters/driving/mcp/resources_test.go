package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAlias(t *testing.T) {
	tests := []struct {
		uri      string
		expected string
	}{
		{"unitbot://units/km", "km"},
		{"unitbot://units/", ""},
		{"unitbot://units", ""},
		{"file://units/km", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractAlias(tt.uri))
		})
	}
}

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{Params: &mcp.ReadResourceParams{URI: uri}}
}

func TestServer_handleUnitsResource(t *testing.T) {
	server := newTestServer(t, nil)

	result, err := server.handleUnitsResource(context.Background(), readRequest("unitbot://units"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var units []UnitOutput
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &units))
	assert.Len(t, units, 12)
	assert.Equal(t, "kilometer", units[0].Name)
}

func TestServer_handleUnitResource(t *testing.T) {
	server := newTestServer(t, nil)

	t.Run("known alias", func(t *testing.T) {
		result, err := server.handleUnitResource(context.Background(), readRequest("unitbot://units/pounds"))
		require.NoError(t, err)

		var unit UnitOutput
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &unit))
		assert.Equal(t, "pound", unit.Name)
		assert.Equal(t, "lbs", unit.Symbol)
		assert.Equal(t, "kilogram", unit.PairsTo)
	})

	t.Run("unknown alias", func(t *testing.T) {
		_, err := server.handleUnitResource(context.Background(), readRequest("unitbot://units/parsec"))
		assert.Error(t, err)
	})
}
