package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Counters is the read side of the shared search counters. Reads may
// be stale relative to concurrent increments; the reporter only needs
// eventually-consistent snapshots.
type Counters interface {
	Generated() uint64
	Matched() uint64
}

const defaultInterval = 200 * time.Millisecond

// Reporter polls the counters on a fixed interval and logs the derived
// rate and match odds. It is purely observational and never blocks the
// workers.
type Reporter struct {
	counters Counters
	start    time.Time
	interval time.Duration
	log      *zap.SugaredLogger
}

func NewReporter(c Counters, start time.Time, interval time.Duration, log *zap.SugaredLogger) *Reporter {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Reporter{counters: c, start: start, interval: interval, log: log}
}

// Run polls until the context is cancelled.
func (r *Reporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			snap := TakeSnapshot(r.counters, now.Sub(r.start))
			r.log.Infow("progress",
				"generated", snap.Generated,
				"rate_addr_per_sec", fmt.Sprintf("%.2f", snap.Rate),
				"matched", snap.Matched,
				"odds", snap.OddsLabel(),
				"elapsed", HumanDuration(snap.Elapsed),
			)
		}
	}
}

// Snapshot is one derived view of the counters. Values are
// approximate by design: the two counters are read independently.
type Snapshot struct {
	Generated uint64
	Matched   uint64
	Elapsed   time.Duration
	Rate      float64 // generations per second
	Odds      uint64  // generated per match; 0 until the first match
}

// TakeSnapshot computes the display values, guarding both divisions.
func TakeSnapshot(c Counters, elapsed time.Duration) Snapshot {
	snap := Snapshot{
		Generated: c.Generated(),
		Matched:   c.Matched(),
		Elapsed:   elapsed,
	}
	if secs := elapsed.Seconds(); secs > 0 {
		snap.Rate = float64(snap.Generated) / secs
	}
	if snap.Matched > 0 {
		snap.Odds = snap.Generated / snap.Matched
	}
	return snap
}

// OddsLabel renders the empirical odds as "1/N", or "-" before the
// first match.
func (s Snapshot) OddsLabel() string {
	if s.Matched == 0 {
		return "-"
	}
	return fmt.Sprintf("1/%d", s.Odds)
}

// HumanDuration renders d the way the progress log wants it.
func HumanDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
}
