package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jessevdk/go-flags"

	"GameCatalog/internal/app"
	"GameCatalog/internal/config"
	"GameCatalog/internal/listing"
	"GameCatalog/internal/logging"
)

type options struct {
	Config   string   `long:"config" short:"c" description:"Path to YAML configuration (defaults to $GAME_CATALOG_CONFIG)"`
	Input    string   `long:"input" short:"i" default:"-" description:"Catalog page to read, - for stdin"`
	Output   string   `long:"output" short:"o" default:"-" description:"Where to write the processed page, - for stdout"`
	Sort     string   `long:"sort" short:"s" description:"Sort selector value to choose after load (sortByDate, sortByTitle, sortByAuthor, sortByCount)"`
	Toggle   []bool   `long:"toggle" short:"t" description:"Click the direction toggle; repeat to click again"`
	Query    string   `long:"query" short:"q" description:"Text typed into the search box"`
	Events   []string `long:"event" short:"e" description:"Extra interaction replayed after the others: input=<text>, select=<sorter> or toggle"`
	Now      string   `long:"now" description:"Evaluation time for badges (RFC3339), defaults to the current time"`
	LogLevel string   `long:"log-level" env:"GAME_CATALOG_LOG_LEVEL" description:"debug, info, warn or error"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	cfg := config.Load(opts.Config)
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	logger := logging.New(cfg.Logging.Level)

	if err := run(context.Background(), cfg, opts, logger); err != nil {
		logger.Error("catalog processing failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, opts options, logger *slog.Logger) error {
	events, err := buildEvents(opts)
	if err != nil {
		return err
	}

	var now time.Time
	if opts.Now != "" {
		now, err = time.Parse(time.RFC3339, opts.Now)
		if err != nil {
			return fmt.Errorf("parse --now: %w", err)
		}
	}

	in, closeIn, err := openInput(opts.Input)
	if err != nil {
		return err
	}
	defer closeIn()

	var out bytes.Buffer
	application := app.New(cfg, logger)
	if err := application.Run(ctx, app.RunOptions{Input: in, Output: &out, Now: now, Events: events}); err != nil {
		return err
	}

	// The page is written only once fully rendered, so --input and --output
	// may name the same file.
	if err := writeOutput(opts.Output, out.Bytes()); err != nil {
		return err
	}

	logger.Info("catalog written", "output", opts.Output, "events", len(events))
	return nil
}

// buildEvents orders interactions the way a visitor would: pick a key,
// flip direction, type a query, then any explicit --event values.
func buildEvents(opts options) ([]listing.Event, error) {
	var events []listing.Event
	if opts.Sort != "" {
		events = append(events, listing.Event{Kind: listing.EventSelect, Value: opts.Sort})
	}
	for range opts.Toggle {
		events = append(events, listing.Event{Kind: listing.EventToggle})
	}
	if opts.Query != "" {
		events = append(events, listing.Event{Kind: listing.EventInput, Value: opts.Query})
	}
	for _, raw := range opts.Events {
		ev, err := listing.ParseEvent(raw)
		if err != nil {
			return nil, fmt.Errorf("parse --event: %w", err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
