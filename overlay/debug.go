package overlay

import (
	"fmt"
	"io"
	"os"
)

// Debug logging infrastructure for the split/fill/link/extract pipeline:
// a package-level toggle and writer rather than a structured-logging
// dependency, since the pipeline itself has nothing to log beyond a
// handful of stage-boundary traces.
var (
	// Debug enables detailed pipeline tracing when true.
	Debug = false
	// DebugOutput is where debug output goes (default: os.Stderr).
	DebugOutput io.Writer = os.Stderr
)

// debugLog prints a debug message if Debug is enabled.
func debugLog(format string, args ...interface{}) {
	if Debug {
		fmt.Fprintf(DebugOutput, "[overlay] "+format+"\n", args...)
	}
}

// debugLogStage prints a pipeline stage separator in debug output.
func debugLogStage(stage string, n int) {
	if Debug {
		fmt.Fprintf(DebugOutput, "[overlay] -- %s (%d items) --\n", stage, n)
	}
}
