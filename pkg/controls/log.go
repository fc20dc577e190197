package controls

import "github.com/go-logr/logr"

// log carries the package's diagnostics. Everything is discarded until
// SetLogger routes it somewhere.
var log = logr.Discard()

// SetLogger routes control diagnostics to l. Pass logr.Discard to silence
// them again.
func SetLogger(l logr.Logger) {
	log = l
}
