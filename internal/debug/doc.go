// Package debug provides optional file-based debug logging.
//
// When the ALTERNATOR_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Init opens a log explicitly. Otherwise,
// logging is a no-op.
package debug
