package sweep

import "errors"

// Sentinel errors for the sweep's failure modes.
var (
	// ErrOracleInconsistent wraps a traits.InconsistencyError recovered
	// at a public entry point boundary. It is the only way an oracle
	// contradiction reaches a caller instead of crashing the process.
	ErrOracleInconsistent = errors.New("sweep: geometric traits returned an inconsistent result")

	// ErrQueueExhausted names the resource-exhaustion failure kind (the
	// event queue or status line failing to allocate mid-sweep). No
	// code path in this package returns it: neither backing container
	// reports an allocation failure as a value.
	ErrQueueExhausted = errors.New("sweep: event queue or status line allocation failed")
)
