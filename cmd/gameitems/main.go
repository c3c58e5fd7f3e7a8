package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/gameitems/internal/catalog"
	"github.com/osse101/gameitems/internal/config"
	"github.com/osse101/gameitems/internal/logger"
	"github.com/osse101/gameitems/internal/metrics"
	"github.com/osse101/gameitems/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	ctx := logger.WithRunID(context.Background(), logger.GenerateRunID())

	if err := run(ctx, os.Stdout); err != nil {
		logger.FromContext(ctx).Error("Run failed", "error", err)
		os.Exit(1)
	}

	if cfg.DumpMetrics {
		if err := metrics.WriteText(os.Stderr, prometheus.DefaultGatherer); err != nil {
			slog.Warn("Failed to dump metrics", "error", err)
		}
	}
}

// run builds the default catalog, prints it, applies every modifier and prints the result
func run(ctx context.Context, w io.Writer) error {
	inv, mods, err := catalog.Default(ctx)
	if err != nil {
		return fmt.Errorf("failed to build default catalog: %w", err)
	}

	p := report.NewPrinter(w)
	p.Section(report.HeaderInventory, inv)
	p.Blank()
	p.Section(report.HeaderModifiers, mods)
	p.Blank()
	p.Line(report.StatusApplying)

	inv.ApplyAll(ctx, mods)

	p.Lines(inv)

	if err := p.Err(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
