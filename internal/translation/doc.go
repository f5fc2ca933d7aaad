// Package translation provides English to Korean translation of code
// identifiers and comments. It wires the dictionary, the online strategies,
// the cache and the engine together and exposes the operations used by the
// command line, the hover provider and the HTTP server.
package translation
