package search

import "sync/atomic"

// Counters holds the two shared progress counters. Increments are
// atomic; reads may lag concurrent increments, which is fine for the
// progress display they feed. Within one worker iteration generated is
// always incremented before matched, so matched never exceeds
// generated.
type Counters struct {
	generated atomic.Uint64
	matched   atomic.Uint64
}

// IncGenerated bumps the generated total and returns the new value.
func (c *Counters) IncGenerated() uint64 { return c.generated.Add(1) }

// IncGeneratedCapped bumps the generated total unless it already
// reached limit, and reports whether this generation was admitted.
// The check and the increment are one atomic step, so the total never
// overshoots the limit regardless of interleaving.
func (c *Counters) IncGeneratedCapped(limit uint64) (uint64, bool) {
	for {
		cur := c.generated.Load()
		if cur >= limit {
			return cur, false
		}
		if c.generated.CompareAndSwap(cur, cur+1) {
			return cur + 1, true
		}
	}
}

// IncMatched bumps the matched total and returns the new value.
func (c *Counters) IncMatched() uint64 { return c.matched.Add(1) }

func (c *Counters) Generated() uint64 { return c.generated.Load() }
func (c *Counters) Matched() uint64   { return c.matched.Load() }
