package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/unitbot/internal/core/domain"
)

// ConvertInput is the input schema for the convert_units tool.
type ConvertInput struct {
	Text string `json:"text" jsonschema:"free text that may mention quantities such as 171 cm or 140 pounds"`
}

// ConvertOutput is the output schema for the convert_units tool.
type ConvertOutput struct {
	Reply       string             `json:"reply"`
	Matched     bool               `json:"matched"`
	Conversions []ConversionOutput `json:"conversions"`
}

// ConversionOutput is one recognised quantity and its counterpart.
type ConversionOutput struct {
	Value          float64 `json:"value"`
	Unit           string  `json:"unit"`
	ConvertedValue float64 `json:"converted_value"`
	ConvertedUnit  string  `json:"converted_unit"`
}

// ListUnitsInput is the input schema for the list_units tool.
type ListUnitsInput struct {
	Category string `json:"category,omitempty" jsonschema:"optional filter: length, mass or temperature"`
}

// ListUnitsOutput is the output schema for the list_units tool.
type ListUnitsOutput struct {
	Units []UnitOutput `json:"units"`
	Count int          `json:"count"`
}

// BirthdaysInput is the input schema for the birthdays_today tool.
type BirthdaysInput struct{}

// BirthdaysOutput lists the users celebrating today.
type BirthdaysOutput struct {
	Date  string   `json:"date"`
	Users []string `json:"users"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert_units",
		Description: "Find quantities in free text and convert each to its metric or imperial counterpart",
	}, s.handleConvert)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_units",
		Description: "List the units the converter recognises",
	}, s.handleListUnits)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "birthdays_today",
		Description: "List users whose birthday is today",
	}, s.handleBirthdaysToday)
}

func (s *Server) handleConvert(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ConvertInput,
) (*mcp.CallToolResult, ConvertOutput, error) {
	conversions := s.ports.Responder.Conversions(input.Text)
	reply, ok := s.ports.Responder.Respond(input.Text)

	output := ConvertOutput{
		Reply:       reply,
		Matched:     ok,
		Conversions: make([]ConversionOutput, len(conversions)),
	}
	for i, c := range conversions {
		output.Conversions[i] = ConversionOutput{
			Value:          c.Original.Magnitude,
			Unit:           c.Original.Unit.Symbol(),
			ConvertedValue: c.Converted.Magnitude,
			ConvertedUnit:  c.Converted.Unit.Symbol(),
		}
	}
	return nil, output, nil
}

func (s *Server) handleListUnits(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListUnitsInput,
) (*mcp.CallToolResult, ListUnitsOutput, error) {
	filter := strings.ToLower(strings.TrimSpace(input.Category))
	switch domain.Category(filter) {
	case "", domain.CategoryLength, domain.CategoryMass, domain.CategoryTemperature:
	default:
		return nil, ListUnitsOutput{}, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, input.Category)
	}

	units := make([]UnitOutput, 0, len(domain.AllUnits()))
	for _, u := range catalog() {
		if filter == "" || u.Category == filter {
			units = append(units, u)
		}
	}
	return nil, ListUnitsOutput{Units: units, Count: len(units)}, nil
}

func (s *Server) handleBirthdaysToday(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ BirthdaysInput,
) (*mcp.CallToolResult, BirthdaysOutput, error) {
	today := s.now().UTC()
	output := BirthdaysOutput{Date: today.Format("02/01"), Users: []string{}}
	if s.ports.Birthdays == nil {
		return nil, output, nil
	}

	birthdays, err := s.ports.Birthdays.On(ctx, today)
	if err != nil {
		return nil, BirthdaysOutput{}, fmt.Errorf("listing birthdays: %w", err)
	}
	for _, b := range birthdays {
		output.Users = append(output.Users, b.UserID)
	}
	return nil, output, nil
}
