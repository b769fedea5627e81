package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Amr-9/ZeroHunter/internal/config"
	"github.com/Amr-9/ZeroHunter/internal/logging"
	"github.com/Amr-9/ZeroHunter/internal/ui"
	"github.com/Amr-9/ZeroHunter/pkg/generator"
	"github.com/Amr-9/ZeroHunter/pkg/generator/cpu"
	"github.com/Amr-9/ZeroHunter/pkg/generator/tron"
	"github.com/Amr-9/ZeroHunter/pkg/generator/verify"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	seed          string
	threshold     int
	lanes         int
	baseIteration string
	stride        uint64
	logLevel      string
	noPrompt      bool
	outputJSON    bool
	highPriority  bool
)

var rootCmd = &cobra.Command{
	Use:   "zerohunter",
	Short: "Search for Ethereum addresses with leading zero bytes",
	Long: `ZeroHunter derives candidate keys as SHA3-256(seed || iteration) and races
parallel lanes toward the first address with at least --threshold leading zero
bytes. Every result can be reproduced from its seed and iteration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Setup(os.Stderr, logLevel, isTerminal(os.Stderr))
	},
	RunE: runSearch,
}

func init() {
	defaults := generator.DefaultConfig()

	rootCmd.Version = config.Version
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Log level (trace, debug, info, warn, error, crit)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output the result in JSON format")

	flags := rootCmd.Flags()
	flags.StringVarP(&seed, "seed", "s", defaults.Seed, "Entropy seed")
	flags.IntVarP(&threshold, "threshold", "t", defaults.Threshold, "Minimum leading zero bytes (0-20)")
	flags.IntVarP(&lanes, "lanes", "l", defaults.Lanes, "Parallel search lanes")
	flags.StringVar(&baseIteration, "base-iteration", defaults.BaseIteration.Dec(), "Starting counter (decimal, up to 2^128-1)")
	flags.Uint64Var(&stride, "stride", 0, "Offset between lane starting counters (0 = all lanes share the base)")
	flags.BoolVar(&noPrompt, "no-prompt", false, "Skip the welcome screen")
	flags.BoolVar(&highPriority, "high-priority", false, "Raise process priority while searching")
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func parseIteration(s string) (*uint256.Int, error) {
	it, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("invalid iteration %q: %w", s, err)
	}
	if it.BitLen() > 128 {
		return nil, fmt.Errorf("%w: %s", generator.ErrInvalidBaseIteration, s)
	}
	return it, nil
}

func searchConfig() (*generator.Config, error) {
	base, err := parseIteration(baseIteration)
	if err != nil {
		return nil, err
	}

	cfg := &generator.Config{
		Seed:          seed,
		Threshold:     threshold,
		Lanes:         lanes,
		BaseIteration: *base,
		Stride:        stride,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := searchConfig()
	if err != nil {
		return err
	}

	if highPriority {
		if err := raisePriority(); err != nil {
			log.Warn("Could not raise process priority", "err", err)
		}
	}

	interactive := !outputJSON && isTerminal(os.Stdout)
	if interactive && !noPrompt && isTerminal(os.Stdin) {
		if err := ui.Welcome(config.Version); err != nil {
			if errors.Is(err, ui.ErrAborted) {
				return nil
			}
			return err
		}
	}

	if interactive {
		ui.ClearScreen()
		ui.PrintWelcomeBanner(config.Version)
		ui.PrintSearchInfo(cfg, ui.DetectCPU())
		return searchInteractive(cmd.Context(), cfg)
	}
	return searchPlain(cmd.Context(), cfg)
}

// searchInteractive drives the generator directly so it can redraw the progress line.
func searchInteractive(parent context.Context, cfg *generator.Config) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	gen := cpu.NewCPUGenerator(cfg.Lanes)
	resultChan, err := gen.Start(ctx, cfg)
	if err != nil {
		return err
	}

	startTime := time.Now()
	ticker := time.NewTicker(config.ProgressRate)
	defer ticker.Stop()

	expected := ui.ExpectedAttempts(cfg.Threshold)
	frame := 0

	for {
		select {
		case result, ok := <-resultChan:
			elapsed := time.Since(startTime)
			stats := gen.Stats()
			ui.ClearLine()

			if !ok {
				ui.PrintNoResult(elapsed, stats.Attempts)
				return generator.ErrNoResult
			}
			if err := verify.Result(&result, cfg.Threshold); err != nil {
				return fmt.Errorf("result failed verification: %w", err)
			}
			ui.PrintSuccess(&result, elapsed, stats.Attempts)
			return nil

		case <-ticker.C:
			ui.PrintProgress(gen.Stats(), expected, frame)
			frame++

		case sig := <-sigChan:
			ui.ClearLine()
			log.Warn("Received signal, stopping lanes", "signal", sig)
			cancel()
			// Lanes close resultChan once they observe the cancellation.
			sigChan = nil
		}
	}
}

// searchPlain runs the search through cpu.Search and prints the result without redraws.
func searchPlain(parent context.Context, cfg *generator.Config) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Searching", "seed", cfg.Seed, "threshold", cfg.Threshold, "lanes", cfg.Lanes,
		"base", cfg.BaseIteration.Dec(), "stride", cfg.Stride)

	result, err := cpu.Search(ctx, cfg)
	if errors.Is(err, generator.ErrNoResult) {
		fmt.Println("No valid key found.")
		return err
	}
	if err != nil {
		return err
	}

	if err := verify.Result(result, cfg.Threshold); err != nil {
		return fmt.Errorf("result failed verification: %w", err)
	}

	if outputJSON {
		return printJSON(result)
	}

	fmt.Printf("FINISHED.\nAddress: %s\nTron Address: %s\nPrivate Key: %s\nEntropy Seed: %q\nHash Iteration: %s\nZero Bytes: %d\n",
		result.Address.Hex(), tron.FromEthereum(result.Address), result.PrivateKey.Hex(),
		result.Seed, result.Iteration.Dec(), result.Score)
	return nil
}

type resultJSON struct {
	Address     string `json:"address"`
	TronAddress string `json:"tronAddress"`
	PrivateKey  string `json:"privateKey"`
	Seed        string `json:"seed"`
	Iteration   string `json:"iteration"`
	Score       int    `json:"score"`
	Lane        int    `json:"lane"`
}

func printJSON(result *generator.Result) error {
	data, err := json.MarshalIndent(resultJSON{
		Address:     result.Address.Hex(),
		TronAddress: tron.FromEthereum(result.Address),
		PrivateKey:  result.PrivateKey.Hex(),
		Seed:        result.Seed,
		Iteration:   result.Iteration.Dec(),
		Score:       result.Score,
		Lane:        result.Lane,
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
