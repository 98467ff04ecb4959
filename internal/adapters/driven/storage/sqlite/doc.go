// Package sqlite provides a SQLite-based implementation of the birthday ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. A single database connection backs:
//
//   - BirthdayStore: user birthdays keyed by chat user ID
//   - NotificationLog: one row per UTC day whose greetings were sent
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory (NNN_name.up.sql / NNN_name.down.sql).
//
// # Data Location
//
// By default, the database is stored at ~/.unitbot/data/unitbot.db
package sqlite
