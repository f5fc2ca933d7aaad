// Package logging builds the zap loggers used by the command line and the
// HTTP server.
package logging
