package search

import "time"

type Source string

const (
	SourceRandom   Source = "random"
	SourceMnemonic Source = "mnemonic"
)

type Options struct {
	Source     Source
	Prefixes   []string
	Passphrase string // BIP-39 passphrase for the mnemonic source

	CaptureCount int    // how many non-matching samples to keep; 0 disables
	Output       string // non-matching records destination
	MatchedOut   string // matched records destination

	Workers int // 0 -> runtime.NumCPU()

	// MaxGenerated bounds the total number of generations across all
	// workers; 0 means run until the context is cancelled. Used by
	// tests and benchmarks — production runs leave it at 0.
	MaxGenerated uint64

	// ReportInterval overrides the telemetry poll interval; 0 keeps
	// the 200ms default.
	ReportInterval time.Duration
}
