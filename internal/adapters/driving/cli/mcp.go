package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/unitbot/internal/adapters/driving/mcp"
	"github.com/custodia-labs/unitbot/internal/core/services"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server exposing the converter.

Tools:
  convert_units   - convert every quantity found in a text
  list_units      - list recognised units
  birthdays_today - list users celebrating today

Resources:
  unitbot://units         - the unit catalog
  unitbot://units/{alias} - one unit by alias

By default the server speaks JSON-RPC over stdio. Use --port to serve the
streamable HTTP transport instead, or --http to pick a free local port.

Examples:
  unitbot mcp serve
  unitbot mcp serve --port 8080
  unitbot mcp serve --http`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("http", false, "serve HTTP on the first free port from 8765")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	useHTTP, err := cmd.Flags().GetBool("http")
	if err != nil {
		return fmt.Errorf("getting http flag: %w", err)
	}
	if useHTTP && port == 0 {
		port, err = services.FindAvailablePort(services.MCPPortRange[0], services.MCPPortRange[1])
		if err != nil {
			return fmt.Errorf("choosing MCP port: %w", err)
		}
	}

	ports := &mcp.Ports{
		Responder: responder,
		Birthdays: birthdayService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		cmd.PrintErrf("MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}
	return server.Run(cmd.Context())
}
