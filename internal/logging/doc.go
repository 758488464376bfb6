// Package logging assembles the slog loggers used by the fastj commands.
//
// It owns the console and JSON handlers and the level parsing shared by the
// config file and command-line flags. Logs go to stderr so they never mix
// with records written to stdout.
package logging
