package internal

import (
	"io"
	"log"
)

// Debug output for the builders. Silent unless SetDebugOutput is called.
var debugLog = log.New(io.Discard, "convexhull: ", log.Lmicroseconds)

func SetDebugOutput(w io.Writer) {
	debugLog.SetOutput(w)
}

func debugf(format string, args ...interface{}) {
	if debugLog.Writer() == io.Discard {
		return
	}
	debugLog.Printf(format, args...)
}
