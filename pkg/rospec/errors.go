package rospec

import "errors"

// Sentinel errors
var (
	// ErrNoStructure is returned when the input contains neither a
	// node-type block nor a system block. Anything less malformed parses
	// best-effort: unrecognized statements are skipped, instances with
	// unknown types are dropped, and a missing system block yields an
	// empty instance set.
	ErrNoStructure = errors.New("no node type or system block found in specification")
)
