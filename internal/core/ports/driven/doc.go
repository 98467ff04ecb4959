// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - ConfigStore: Application configuration (TOML file or in-memory)
//   - BirthdayStore: Birthday persistence (SQLite or in-memory)
//   - NotificationLog: Per-day announcement flag (SQLite or in-memory)
//   - Notifier: Posts messages to a chat channel (Discord, TUI)
//
// The unit conversion engine needs none of these; it reads only the
// immutable tables in the domain package.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
