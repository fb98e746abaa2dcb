package symcore

import (
	"log"
	"sync/atomic"
)

// defaultMaxPrimeResolution bounds the trial-division depth used by
// numeric power simplification (see power.go) when no caller has
// configured a different limit.
const defaultMaxPrimeResolution = 100000

var maxPrimeResolution atomic.Int64

func init() {
	maxPrimeResolution.Store(defaultMaxPrimeResolution)
}

// SetMaxPrimeResolution sets the process-wide limit on the trial
// division depth used when factoring numeric bases during power
// simplification (spec.md §5, item 1). It must be called before any
// expression construction to avoid observably inconsistent
// simplification results; reads are lock-free.
func SetMaxPrimeResolution(n int64) {
	if n <= 0 {
		return
	}
	maxPrimeResolution.Store(n)
}

// GetMaxPrimeResolution returns the current prime-resolution limit.
func GetMaxPrimeResolution() int64 {
	return maxPrimeResolution.Load()
}

// diagnostic is the minimal logging hook mentioned in SPEC_FULL.md §2.
// It is not a pluggable sink; it exists only so recoverable anomalies
// (e.g. a fraction denominator that expands to zero) leave a trace the
// way tsym's TSYM_WARNING does, without the core depending on a
// logging library or exposing one to callers.
var diagnostic = func(format string, args ...any) {
	log.Printf("symcore: "+format, args...)
}
