package search

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"solvanity/internal/keygen"
	"solvanity/internal/match"
	"solvanity/internal/sink"
	"solvanity/internal/telemetry"
	"solvanity/pkg/logx"
)

// flushEvery bounds data loss on abrupt termination: both sinks are
// flushed on every millionth generation, so at most ~1M unflushed
// records can be lost. Matched records are additionally flushed the
// moment they are written.
const flushEvery = 1_000_000

// Result summarizes a finished run.
type Result struct {
	Generated uint64
	Matched   uint64
	Captured  int
	Elapsed   time.Duration
}

// Run executes the search until the context is cancelled (or
// opt.MaxGenerated is reached). Any entropy or write failure cancels
// every worker and is returned; a cancelled context is a clean stop,
// not an error.
func Run(ctx context.Context, opt Options) (*Result, error) {
	set, err := match.NewPrefixSet(opt.Prefixes)
	if err != nil {
		return nil, fmt.Errorf("build prefix set: %w", err)
	}

	src, err := sourceFor(opt)
	if err != nil {
		return nil, err
	}

	workers := opt.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	matchedSink, err := sink.Open(opt.MatchedOut)
	if err != nil {
		return nil, fmt.Errorf("open matched sink: %w", err)
	}
	sampleSink, err := sink.Open(opt.Output)
	if err != nil {
		matchedSink.Close()
		return nil, fmt.Errorf("open sample sink: %w", err)
	}

	counters := &Counters{}
	capture := NewCaptureBuffer(opt.CaptureCount)

	app := logx.S()
	app.Infow("search started",
		"source", opt.Source,
		"prefixes", set.Prefixes(),
		"workers", workers,
		"capture_count", opt.CaptureCount,
		"matched_out", matchedSink.Path(),
		"output", sampleSink.Path(),
	)

	start := time.Now()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reporterDone := make(chan struct{})
	reporter := telemetry.NewReporter(counters, start, opt.ReportInterval, app)
	go func() {
		defer close(reporterDone)
		reporter.Run(ctx)
	}()

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		w := &worker{
			src:          src,
			set:          set,
			counters:     counters,
			capture:      capture,
			matchedSink:  matchedSink,
			sampleSink:   sampleSink,
			maxGenerated: opt.MaxGenerated,
			start:        start,
		}
		g.Go(func() error { return w.run(gctx) })
	}

	runErr := g.Wait()
	cancel()
	<-reporterDone

	// losing buffered records is as fatal as losing a live write
	if err := matchedSink.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if err := sampleSink.Close(); err != nil && runErr == nil {
		runErr = err
	}

	res := &Result{
		Generated: counters.Generated(),
		Matched:   counters.Matched(),
		Captured:  capture.Len(),
		Elapsed:   time.Since(start),
	}
	app.Infow("search stopped",
		"generated", res.Generated,
		"matched", res.Matched,
		"captured", res.Captured,
		"elapsed", telemetry.HumanDuration(res.Elapsed),
	)
	if runErr != nil {
		return res, runErr
	}
	return res, nil
}

func sourceFor(opt Options) (keygen.Source, error) {
	switch opt.Source {
	case SourceRandom, "":
		return keygen.RandomSource{}, nil
	case SourceMnemonic:
		return keygen.MnemonicSource{Passphrase: opt.Passphrase}, nil
	default:
		return nil, fmt.Errorf("unknown source: %s", opt.Source)
	}
}

type worker struct {
	src          keygen.Source
	set          *match.PrefixSet
	counters     *Counters
	capture      *CaptureBuffer
	matchedSink  *sink.Sink
	sampleSink   *sink.Sink
	maxGenerated uint64
	start        time.Time
}

// run is the hot loop: generate, count, match, route, until cancelled.
func (w *worker) run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		kp, err := w.src.Generate()
		if err != nil {
			// a broken entropy source invalidates the search
			return fmt.Errorf("keypair generation: %w", err)
		}

		var n uint64
		if w.maxGenerated > 0 {
			var ok bool
			if n, ok = w.counters.IncGeneratedCapped(w.maxGenerated); !ok {
				return nil
			}
		} else {
			n = w.counters.IncGenerated()
		}

		if prefix, ok := w.set.Match(kp.Address); ok {
			w.counters.IncMatched()
			if err := w.matchedSink.Append(kp.Address, kp.Secret); err != nil {
				return err
			}
			// matches are rare and must survive a crash
			if err := w.matchedSink.Flush(); err != nil {
				return err
			}
			w.logFound(kp, prefix, n)
		} else if w.capture.TryInsert(kp.Address, kp.Secret) {
			if err := w.sampleSink.Append(kp.Address, kp.Secret); err != nil {
				return err
			}
		}

		if n%flushEvery == 0 {
			if err := w.sampleSink.Flush(); err != nil {
				return err
			}
			if err := w.matchedSink.Flush(); err != nil {
				return err
			}
		}
	}
}

func (w *worker) logFound(kp keygen.Keypair, prefix string, attempt uint64) {
	fields := []any{
		"address", kp.Address,
		"prefix", prefix,
		"attempt", attempt,
		"elapsed", telemetry.HumanDuration(time.Since(w.start)),
		"private_key", kp.Secret,
	}
	if kp.Mnemonic != "" {
		fields = append(fields, "mnemonic", kp.Mnemonic)
	}
	logx.S().Infow("FOUND", fields...)
}
