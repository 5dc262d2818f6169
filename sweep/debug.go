//go:build debug

package sweep

import (
	"log"
	"os"
)

// debugLogger is the sweep's tracing facility, kept apart from the
// algorithm itself. It only exists in builds tagged "debug"
// (go build -tags debug).
var debugLogger = log.New(os.Stderr, "[planesweep DEBUG] ", log.LstdFlags)

func logDebugf(format string, v ...interface{}) {
	debugLogger.Printf(format, v...)
}
