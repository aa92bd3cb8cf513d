package swizzle

import (
	"log"
	"sync/atomic"
)

// loggerPtr holds the optional diagnostic logger. nil (the default) means
// tracing is disabled and the surface walker does no formatting work at
// all on the hot path.
var loggerPtr atomic.Pointer[log.Logger]

// SetLogger installs l as the destination for this package's optional
// tracing of the surface walker: one line per array layer with the layer
// index and the source/destination cursor offsets.
// Pass nil to disable tracing, which is also the default. Safe for
// concurrent use.
func SetLogger(l *log.Logger) {
	loggerPtr.Store(l)
}

func tracef(format string, args ...any) {
	l := loggerPtr.Load()
	if l == nil {
		return
	}
	l.Printf(format, args...)
}
