package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Githu836/Phone-Lookup/internal/batch"
	"github.com/Githu836/Phone-Lookup/internal/carrier"
	"github.com/Githu836/Phone-Lookup/internal/config"
	"github.com/Githu836/Phone-Lookup/internal/country"
	"github.com/Githu836/Phone-Lookup/internal/export"
	"github.com/Githu836/Phone-Lookup/internal/lookup"
	"github.com/Githu836/Phone-Lookup/internal/render"
	"github.com/Githu836/Phone-Lookup/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for phone-lookup.
type CLI struct {
	Version   kong.VersionFlag `help:"Show version." short:"V"`
	Lookup    LookupCmd        `cmd:"" default:"withargs" help:"Look up a single phone number."`
	Batch     BatchCmd         `cmd:"" help:"Look up every number in a file, one per line."`
	Countries CountriesCmd     `cmd:"" help:"List supported country codes."`
}

// LookupCmd looks up one phone number.
type LookupCmd struct {
	Number string `arg:"" help:"Phone number in international (+62812...) or national (0812...) format."`
	Region string `help:"Default ISO region for numbers without a leading +." short:"r"`
	Output string `help:"Write the result as JSON to this file." short:"o" type:"path"`
	Plain  bool   `help:"Force plain output without colors." default:"false"`
}

// looker runs a single lookup; implemented by *lookup.Pipeline.
type looker interface {
	Lookup(raw string) (lookup.Result, error)
}

// Run executes the lookup command.
func (l *LookupCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("lookup: %w", err)
	}
	if l.Region != "" {
		cfg.Lookup.DefaultRegion = strings.ToUpper(l.Region)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("lookup: %w", err)
	}

	pipe, err := buildPipeline(cfg)
	if err != nil {
		return fmt.Errorf("lookup: %w", err)
	}

	opts := render.Options{Plain: l.Plain || cfg.Output.Plain}
	return l.run(os.Stdout, pipe, opts)
}

// run executes the lookup with the given pipeline, enabling testable wiring.
func (l *LookupCmd) run(w io.Writer, lk looker, opts render.Options) error {
	res, err := lk.Lookup(l.Number)
	if err != nil {
		return fmt.Errorf("lookup: %w", err)
	}

	render.Result(w, res, opts)

	if l.Output != "" {
		if err := export.WriteFile(l.Output, export.FromResult(res)); err != nil {
			return fmt.Errorf("lookup: %w", err)
		}
		_, _ = fmt.Fprintf(w, "\nSaved JSON to %s\n", l.Output)
	}
	return nil
}

// BatchCmd looks up every number in a file.
type BatchCmd struct {
	File   string `arg:"" help:"File containing one phone number per line." type:"existingfile"`
	Region string `help:"Default ISO region for numbers without a leading +." short:"r"`
	Output string `help:"Write all results as JSON to this file." short:"o" type:"path"`
	Plain  bool   `help:"Force plain progress output even if stdout is a TTY." default:"false"`
}

// batchRunner abstracts batch.Runner.Run for testing.
type batchRunner interface {
	Run(ctx context.Context, lines []string) ([]batch.Outcome, error)
}

// Run executes the batch command.
func (b *BatchCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	if b.Region != "" {
		cfg.Lookup.DefaultRegion = strings.ToUpper(b.Region)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	pipe, err := buildPipeline(cfg)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	lines, err := batch.ReadLines(b.File)
	if err != nil {
		return err
	}

	plain := b.Plain || cfg.Output.Plain
	bridge := tui.NewBridge()
	display := tui.NewDisplay(tui.DisplayOptions{
		Writer:     os.Stdout,
		ForcePlain: plain,
		Total:      countNonBlank(lines),
	})
	runner := batch.NewRunner(pipe, batch.WithStatus(bridgeStatus(bridge)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return b.run(ctx, os.Stdout, runner, lines, display, bridge, render.Options{Plain: plain})
}

// run executes the batch with display lifecycle management, enabling testable wiring.
func (b *BatchCmd) run(ctx context.Context, w io.Writer, runner batchRunner, lines []string, display tui.Display, bridge *tui.Bridge, opts render.Options) error {
	// Start display goroutine.
	displayDone := make(chan error, 1)
	go func() {
		displayDone <- display.Run(context.Background(), bridge.Events())
	}()

	outcomes, runErr := runner.Run(ctx, lines)

	// Signal display completion.
	if runErr != nil {
		bridge.Error(runErr)
	} else {
		bridge.Done()
	}

	// Wait for display to finish (so it releases the terminal).
	<-displayDone

	if runErr != nil {
		return fmt.Errorf("batch: %w", runErr)
	}

	render.Summary(w, outcomes, opts)

	if b.Output != "" {
		if err := export.WriteFile(b.Output, export.FromOutcomes(outcomes)); err != nil {
			return fmt.Errorf("batch: %w", err)
		}
		_, _ = fmt.Fprintf(w, "Saved JSON to %s\n", b.Output)
	}
	return nil
}

// CountriesCmd lists the static dialing-code directory.
type CountriesCmd struct {
	Plain bool `help:"Force plain output without colors." default:"false"`
}

// Run executes the countries command.
func (c *CountriesCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("countries: %w", err)
	}
	return c.run(os.Stdout, render.Options{Plain: c.Plain || cfg.Output.Plain})
}

// run writes the listing, enabling testable wiring.
func (c *CountriesCmd) run(w io.Writer, opts render.Options) error {
	render.Countries(w, country.List(), opts)
	return nil
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/phone-lookup/config.yaml"),
		".phone-lookup.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildPipeline wires the carrier resolver and lookup pipeline from config.
func buildPipeline(cfg *config.Config) (*lookup.Pipeline, error) {
	resolver, err := carrier.NewResolver(cfg.Carriers.DialingCode, cfg.PrefixTable())
	if err != nil {
		return nil, err
	}
	return lookup.New(cfg.Lookup.DefaultRegion, cfg.Lookup.Locale,
		lookup.WithCarrierResolver(resolver)), nil
}

// bridgeStatus returns a StatusFunc that converts batch outcomes to
// tui.LineMsg and sends them through the bridge.
func bridgeStatus(bridge *tui.Bridge) batch.StatusFunc {
	return func(out batch.Outcome) {
		msg := tui.LineMsg{Line: out.Line, Input: out.Input}
		if out.Failed() {
			msg.Failed = true
			msg.Reason = out.Err.Error()
		} else {
			msg.Carrier = out.Result.Carrier
			msg.Type = string(out.Result.Type)
		}
		bridge.Send(msg)
	}
}

// countNonBlank counts the lines that will produce an outcome.
func countNonBlank(lines []string) int {
	n := 0
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

// Exit codes.
const (
	exitSuccess = 0
	exitLookup  = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	// Per-number failures are lookup errors; everything else is setup,
	// including missing numbering-plan data.
	if errors.Is(err, lookup.ErrInvalidFormat) || errors.Is(err, lookup.ErrUnparseable) {
		return exitLookup
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("phone-lookup"),
		kong.Description("Look up country, carrier, timezone, and type information for phone numbers."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
