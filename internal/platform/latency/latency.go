// Package latency provides the simulated backend delay applied before
// mutations commit.
package latency

import "time"

// Func blocks for the simulated latency. It is not cancellable: once a
// mutation has started waiting it runs to completion.
type Func func()

// None returns immediately.
func None() {}

// Fixed waits d on every call.
func Fixed(d time.Duration) Func {
	if d <= 0 {
		return None
	}
	return func() {
		t := time.NewTimer(d)
		defer t.Stop()
		<-t.C
	}
}
