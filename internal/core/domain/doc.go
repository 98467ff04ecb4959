// Package domain defines the core business entities for unitbot.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - UnitKind: A recognised unit with its symbol, category and counterpart
//   - Quantity: A magnitude in a UnitKind
//   - Message/Reply: Chat traffic as seen by the core
//   - Birthday: A user's day and month of birth
//
// The unit catalog and alias table are package-level and immutable once
// initialised; a broken catalog panics at init.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
