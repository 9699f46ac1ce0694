package search

import "sync"

// Record is one captured (address, secret) sample.
type Record struct {
	Address string
	Secret  string
}

// CaptureBuffer keeps the first capacity non-matching samples seen
// across all workers. Once full it stops accepting permanently; there
// is no eviction. The check and the append happen under one mutex so
// the length can never exceed capacity, not even transiently.
type CaptureBuffer struct {
	mu       sync.Mutex
	records  []Record
	capacity int
}

// NewCaptureBuffer builds a buffer for up to capacity samples.
// capacity 0 disables capture entirely.
func NewCaptureBuffer(capacity int) *CaptureBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &CaptureBuffer{
		records:  make([]Record, 0, capacity),
		capacity: capacity,
	}
}

// TryInsert appends the sample if there is room and reports whether it
// was kept. A false return is the expected steady state once the
// buffer fills — not an error.
func (b *CaptureBuffer) TryInsert(address, secret string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.records) >= b.capacity {
		return false
	}
	b.records = append(b.records, Record{Address: address, Secret: secret})
	return true
}

// Len returns the current number of captured samples.
func (b *CaptureBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.records)
}

// Records returns a copy of the captured samples in insertion order.
func (b *CaptureBuffer) Records() []Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Record, len(b.records))
	copy(out, b.records)
	return out
}
