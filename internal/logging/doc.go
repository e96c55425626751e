// Package logging provides concrete implementations of the termhunt.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes formatted messages to a writer (stderr by default) with thread-safe output
//   - NullLogger: Discards all messages (the default while the TUI owns the screen)
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
