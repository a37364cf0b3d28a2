// Package logging builds the slog loggers used by the docbridge CLI.
//
// Console output is a compact single-line format meant for terminals; JSON
// output suits log collectors. Loggers write to stderr so command output on
// stdout stays machine readable.
package logging
