//go:build !debug

package sweep

// logDebugf is a no-op outside of "debug"-tagged builds, so the
// per-event tracing call in the sweep loop costs nothing in a release
// binary.
func logDebugf(string, ...interface{}) {}
