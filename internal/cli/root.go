package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"solvanity/internal/search"
	"solvanity/pkg/appcfg"
	"solvanity/pkg/logx"
)

var (
	flagPrefixes   []string
	flagCaptureN   int
	flagThreads    int
	flagOutput     string
	flagMatchedOut string
	flagSource     string
	flagPassphrase string
)

var (
	yellow = color.New(color.FgYellow, color.Bold)
	cyan   = color.New(color.FgCyan)
	bold   = color.New(color.Bold)
)

// NewRootCmd wires the search flags. appConf supplies defaults loaded
// from configs/app.yaml; flags win when both are set.
func NewRootCmd(appConf *appcfg.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "solvanity",
		Short: "Parallel Solana vanity address search",
		Long: `solvanity brute-forces ed25519 keypairs until a base58 address
starts with one of the requested prefixes. Matched keypairs are
persisted immediately; the first N non-matching samples can be
captured alongside for inspection.

Examples:
  solvanity --prefixes Sol
  solvanity --prefixes Sol,SOL --threads 8
  solvanity --prefixes ABC --non-matching-count 100 --source mnemonic`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, appConf)
		},
	}

	root.Flags().StringSliceVarP(&flagPrefixes, "prefixes", "p", nil, "address prefixes to search for (comma separated)")
	root.Flags().IntVarP(&flagCaptureN, "non-matching-count", "n", 0, "how many non-matching samples to save (0 disables)")
	root.Flags().IntVarP(&flagThreads, "threads", "t", 0, "worker threads (0 = all CPUs)")
	root.Flags().StringVarP(&flagOutput, "output", "o", "data/solana_addresses.csv", "non-matching records destination")
	root.Flags().StringVarP(&flagMatchedOut, "matched-output", "m", "data/matched_addresses.csv", "matched records destination")
	root.Flags().StringVarP(&flagSource, "source", "s", "random", "keypair source: random or mnemonic")
	root.Flags().StringVar(&flagPassphrase, "passphrase", "", "BIP-39 passphrase for the mnemonic source")
	_ = root.MarkFlagRequired("prefixes")

	return root
}

func run(cmd *cobra.Command, appConf *appcfg.Config) error {
	if flagCaptureN < 0 {
		return fmt.Errorf("--non-matching-count must be >= 0")
	}

	threads := flagThreads
	if threads == 0 {
		threads = appConf.Workers
	}

	opt := search.Options{
		Source:       search.Source(flagSource),
		Prefixes:     flagPrefixes,
		Passphrase:   flagPassphrase,
		CaptureCount: flagCaptureN,
		Output:       flagOutput,
		MatchedOut:   flagMatchedOut,
		Workers:      threads,
	}

	printBanner(opt)

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	res, err := search.Run(ctx, opt)
	if err != nil {
		logx.S().Errorw("search failed", "err", err)
		return err
	}
	if res != nil {
		logx.S().Infow("done",
			"generated", res.Generated,
			"matched", res.Matched,
			"captured", res.Captured,
		)
	}
	return nil
}

func printBanner(opt search.Options) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	bold.Printf("solvanity  •  source: %s  •  capture: %d\n", opt.Source, opt.CaptureCount)
	yellow.Printf("prefixes: %s\n", strings.Join(opt.Prefixes, ", "))
	cyan.Printf("matched -> %s  •  samples -> %s\n\n", opt.MatchedOut, opt.Output)
}
