// Package server exposes the translator over a small local HTTP API so an
// editor host can request identifier, comment and hover translations from a
// long-running process that keeps its cache warm.
package server
