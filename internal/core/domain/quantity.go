package domain

// Quantity is a magnitude expressed in a recognised unit.
// Quantities are values; nothing mutates them after construction.
type Quantity struct {
	Magnitude float64
	Unit      UnitKind
}

// NewQuantity creates a quantity of the given unit.
func NewQuantity(magnitude float64, unit UnitKind) Quantity {
	return Quantity{Magnitude: magnitude, Unit: unit}
}

// Conversion pairs a recognised quantity with its converted counterpart.
type Conversion struct {
	// Original is the quantity as written in the message.
	Original Quantity

	// Converted is the same quantity restated in the paired unit.
	Converted Quantity
}
