// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The unit engine (Scan, Recognize, Convert, FormatLine, Responder) is
// pure: it reads only immutable tables and is safe for concurrent use.
package services
