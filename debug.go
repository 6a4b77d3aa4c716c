package bitinfo

import "github.com/segmentio/bitinfo/internal/debug"

// EnableDebug turns on or off the debug logs of the package, which are
// written to stderr.
func EnableDebug(on bool) { debug.Toggle(on) }
