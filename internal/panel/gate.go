// Package panel holds the plumbing shared by the panel controllers.
package panel

import "golang.org/x/sync/semaphore"

// Gate admits at most one in-flight submission. A second attempt is
// rejected, never queued.
type Gate struct {
	sem *semaphore.Weighted
}

func NewGate() *Gate {
	return &Gate{sem: semaphore.NewWeighted(1)}
}

// TryEnter reports whether the caller now owns the gate. Callers that get
// true must call Leave.
func (g *Gate) TryEnter() bool {
	return g.sem.TryAcquire(1)
}

func (g *Gate) Leave() {
	g.sem.Release(1)
}

// Pending reports whether a submission is in flight.
func (g *Gate) Pending() bool {
	if g.sem.TryAcquire(1) {
		g.sem.Release(1)
		return false
	}
	return true
}
