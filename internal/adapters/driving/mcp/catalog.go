package mcp

import (
	"github.com/custodia-labs/unitbot/internal/core/domain"
)

// UnitOutput describes one unit in the catalog.
type UnitOutput struct {
	Name     string   `json:"name"`
	Symbol   string   `json:"symbol"`
	Category string   `json:"category"`
	System   string   `json:"system"`
	Aliases  []string `json:"aliases"`
	PairsTo  string   `json:"pairs_to"`
}

func unitOutput(u domain.UnitKind) UnitOutput {
	return UnitOutput{
		Name:     u.Name(),
		Symbol:   u.Symbol(),
		Category: u.Category().String(),
		System:   u.System().String(),
		Aliases:  u.UnitAliases(),
		PairsTo:  u.Pair().Name(),
	}
}

func catalog() []UnitOutput {
	all := domain.AllUnits()
	out := make([]UnitOutput, len(all))
	for i, u := range all {
		out[i] = unitOutput(u)
	}
	return out
}
