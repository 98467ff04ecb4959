package services

import (
	"fmt"

	"github.com/custodia-labs/unitbot/internal/core/domain"
)

// Conversion factors between paired units.
const (
	kilometersPerMile   = 1.609344
	milesPerKilometer   = 0.6213712
	metersPerFoot       = 0.3048
	centimetersPerInch  = 2.54
	kilogramsPerPound   = 0.4535924
	gramsPerOunce       = 28.34952
	fahrenheitPerDegree = 1.8
	fahrenheitOffset    = 32.0
)

// rule restates a magnitude in the paired unit.
type rule func(v float64) float64

var rules = map[domain.UnitKind]rule{
	domain.UnitMile:       func(v float64) float64 { return v * kilometersPerMile },
	domain.UnitFoot:       func(v float64) float64 { return v * metersPerFoot },
	domain.UnitInch:       func(v float64) float64 { return v * centimetersPerInch },
	domain.UnitKilometer:  func(v float64) float64 { return v * milesPerKilometer },
	domain.UnitMeter:      func(v float64) float64 { return v / metersPerFoot },
	domain.UnitCentimeter: func(v float64) float64 { return v / centimetersPerInch },
	domain.UnitPound:      func(v float64) float64 { return v * kilogramsPerPound },
	domain.UnitOunce:      func(v float64) float64 { return v * gramsPerOunce },
	domain.UnitKilogram:   func(v float64) float64 { return v / kilogramsPerPound },
	domain.UnitGram:       func(v float64) float64 { return v / gramsPerOunce },
	domain.UnitCelsius:    func(v float64) float64 { return v*fahrenheitPerDegree + fahrenheitOffset },
	domain.UnitFahrenheit: func(v float64) float64 { return (v - fahrenheitOffset) / fahrenheitPerDegree },
}

func init() {
	for _, u := range domain.AllUnits() {
		if _, ok := rules[u]; !ok {
			panic(fmt.Sprintf("services: no conversion rule for %s", u))
		}
	}
}

// Convert restates q in its paired unit.
// It panics if q's unit has no rule, which only happens for invalid units.
func Convert(q domain.Quantity) domain.Quantity {
	r, ok := rules[q.Unit]
	if !ok {
		panic(fmt.Sprintf("services: no conversion rule for unit %d", int(q.Unit)))
	}
	return domain.NewQuantity(r(q.Magnitude), q.Unit.Pair())
}
