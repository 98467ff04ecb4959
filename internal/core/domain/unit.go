package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Category groups units that measure the same physical dimension.
type Category string

// Available unit categories.
const (
	CategoryLength      Category = "length"
	CategoryMass        Category = "mass"
	CategoryTemperature Category = "temperature"
)

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// System is the measurement system a unit belongs to.
// Every unit is paired with a unit of the opposite system.
type System string

// Available measurement systems.
const (
	SystemMetric     System = "metric"
	SystemImperial   System = "imperial"
	SystemCelsius    System = "celsius"
	SystemFahrenheit System = "fahrenheit"
)

// String returns the string representation.
func (s System) String() string {
	return string(s)
}

// UnitKind identifies one recognised unit.
// The zero value is not a valid unit.
type UnitKind int

// Recognised units.
const (
	UnitUnknown UnitKind = iota
	UnitKilometer
	UnitMeter
	UnitCentimeter
	UnitMile
	UnitFoot
	UnitInch
	UnitKilogram
	UnitGram
	UnitPound
	UnitOunce
	UnitCelsius
	UnitFahrenheit
)

// unitInfo is the static description of a unit.
type unitInfo struct {
	name     string
	symbol   string
	category Category
	system   System
	pair     UnitKind
	aliases  []string
}

var units = map[UnitKind]unitInfo{
	UnitKilometer: {
		name: "kilometer", symbol: "km", category: CategoryLength, system: SystemMetric,
		pair: UnitMile, aliases: []string{"km", "kms", "kilometer", "kilometers"},
	},
	UnitMeter: {
		name: "meter", symbol: "m", category: CategoryLength, system: SystemMetric,
		pair: UnitFoot, aliases: []string{"m", "meter", "meters"},
	},
	UnitCentimeter: {
		name: "centimeter", symbol: "cm", category: CategoryLength, system: SystemMetric,
		pair: UnitInch, aliases: []string{"cm", "cms", "centimeter", "centimeters"},
	},
	UnitMile: {
		name: "mile", symbol: "miles", category: CategoryLength, system: SystemImperial,
		pair: UnitKilometer, aliases: []string{"mile", "miles"},
	},
	UnitFoot: {
		name: "foot", symbol: "ft", category: CategoryLength, system: SystemImperial,
		pair: UnitMeter, aliases: []string{"ft", "feet", "foot"},
	},
	UnitInch: {
		name: "inch", symbol: "inches", category: CategoryLength, system: SystemImperial,
		pair: UnitCentimeter, aliases: []string{"inch", "inches"},
	},
	UnitKilogram: {
		name: "kilogram", symbol: "kg", category: CategoryMass, system: SystemMetric,
		pair: UnitPound, aliases: []string{"kg", "kilogram", "kilograms"},
	},
	UnitGram: {
		name: "gram", symbol: "grams", category: CategoryMass, system: SystemMetric,
		pair: UnitOunce, aliases: []string{"g", "gram", "grams"},
	},
	UnitPound: {
		name: "pound", symbol: "lbs", category: CategoryMass, system: SystemImperial,
		pair: UnitKilogram, aliases: []string{"lbs", "pound", "pounds"},
	},
	UnitOunce: {
		name: "ounce", symbol: "oz", category: CategoryMass, system: SystemImperial,
		pair: UnitGram, aliases: []string{"oz", "ounce", "ounces"},
	},
	UnitCelsius: {
		name: "celsius", symbol: "℃", category: CategoryTemperature, system: SystemCelsius,
		pair: UnitFahrenheit, aliases: []string{"c", "℃", "celsius"},
	},
	UnitFahrenheit: {
		name: "fahrenheit", symbol: "℉", category: CategoryTemperature, system: SystemFahrenheit,
		pair: UnitCelsius, aliases: []string{"f", "℉", "fahrenheit"},
	},
}

// aliasTable maps every lower-cased surface form to its unit.
// Built once at init and never mutated.
var aliasTable = buildAliasTable()

// aliasList holds the keys of aliasTable in a stable order.
var aliasList = sortedAliases(aliasTable)

func buildAliasTable() map[string]UnitKind {
	table := make(map[string]UnitKind)
	for kind, info := range units {
		if info.pair == UnitUnknown || info.pair == kind {
			panic(fmt.Sprintf("domain: unit %q has no counterpart", info.name))
		}
		if back := units[info.pair].pair; back != kind {
			panic(fmt.Sprintf("domain: unit %q is not paired symmetrically", info.name))
		}
		if units[info.pair].category != info.category {
			panic(fmt.Sprintf("domain: unit %q is paired across categories", info.name))
		}
		for _, alias := range info.aliases {
			key := strings.ToLower(strings.TrimSpace(alias))
			if other, ok := table[key]; ok {
				panic(fmt.Sprintf("domain: alias %q registered for both %q and %q",
					key, units[other].name, info.name))
			}
			table[key] = kind
		}
	}
	return table
}

func sortedAliases(table map[string]UnitKind) []string {
	list := make([]string, 0, len(table))
	for alias := range table {
		list = append(list, alias)
	}
	sort.Strings(list)
	return list
}

// LookupAlias resolves a surface form to a unit.
// Matching is case-insensitive.
func LookupAlias(word string) (UnitKind, bool) {
	kind, ok := aliasTable[strings.ToLower(word)]
	return kind, ok
}

// Aliases returns every registered alias, sorted.
// The returned slice is a copy.
func Aliases() []string {
	out := make([]string, len(aliasList))
	copy(out, aliasList)
	return out
}

// ContainsAnyAlias reports whether text contains any registered alias
// as a substring. text is expected to be lower-cased already.
func ContainsAnyAlias(text string) bool {
	for _, alias := range aliasList {
		if strings.Contains(text, alias) {
			return true
		}
	}
	return false
}

// AllUnits returns every recognised unit in declaration order.
func AllUnits() []UnitKind {
	return []UnitKind{
		UnitKilometer, UnitMeter, UnitCentimeter,
		UnitMile, UnitFoot, UnitInch,
		UnitKilogram, UnitGram,
		UnitPound, UnitOunce,
		UnitCelsius, UnitFahrenheit,
	}
}

// IsValid returns true if the unit is recognised.
func (u UnitKind) IsValid() bool {
	_, ok := units[u]
	return ok
}

// Name returns the singular English name of the unit.
func (u UnitKind) Name() string {
	if info, ok := units[u]; ok {
		return info.name
	}
	return "unknown"
}

// Symbol returns the display string used in replies.
func (u UnitKind) Symbol() string {
	return units[u].symbol
}

// Category returns the dimension the unit measures.
func (u UnitKind) Category() Category {
	return units[u].category
}

// System returns the measurement system of the unit.
func (u UnitKind) System() System {
	return units[u].system
}

// Pair returns the counterpart unit conversions target.
func (u UnitKind) Pair() UnitKind {
	return units[u].pair
}

// UnitAliases returns the aliases registered for the unit.
func (u UnitKind) UnitAliases() []string {
	info := units[u]
	out := make([]string, len(info.aliases))
	copy(out, info.aliases)
	return out
}

// String returns the unit name.
func (u UnitKind) String() string {
	return u.Name()
}
