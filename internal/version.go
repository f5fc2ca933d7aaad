package internal

// Version is the kotrans release, overridden at build time with
// -ldflags "-X codeberg.org/snonux/kotrans/internal.Version=...".
var Version = "0.1.0"
