// Package debug provides optional file-based debug logging.
//
// When the TUI_DEBUG environment variable is set to a file path, debug
// entries are appended to that file as zerolog JSON lines. Otherwise,
// logging is a no-op.
package debug
