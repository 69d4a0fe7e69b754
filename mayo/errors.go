package mayo

import "errors"

// Error taxonomy for the core, per the external interface contract: every
// failure maps to exactly one of these kinds. RankDeficient never escapes
// the package; it is consumed internally by Sign's rejection loop.
var (
	// ErrDecode is returned when an input buffer's length does not match
	// its declared size.
	ErrDecode = errors.New("mayo: decode: buffer length does not match declared size")

	// ErrRandomness is returned when the entropy source fails.
	ErrRandomness = errors.New("mayo: randomness source failed")

	// ErrSignRetryExhausted is returned when 256 rejection-loop iterations
	// produced no solvable linear system. The caller may retry signing
	// with fresh randomness.
	ErrSignRetryExhausted = errors.New("mayo: sign: rejection loop exhausted without a solvable system")

	errRankDeficient = errors.New("mayo: linear system is rank deficient")
)
