package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/scriptsync/internal/config"
	"github.com/aretw0/scriptsync/internal/logging"
	"github.com/aretw0/scriptsync/internal/presentation/tui"
	"github.com/aretw0/scriptsync/pkg/adapters/file"
	"github.com/aretw0/scriptsync/pkg/domain"
	"github.com/aretw0/scriptsync/pkg/observability"
	"github.com/aretw0/scriptsync/pkg/syncer"
)

// RunOptions contains all the configuration for a sync run.
type RunOptions struct {
	Source     domain.Source
	ConfigPath string
	Stdout     io.Writer
	Stderr     io.Writer
}

// Execute loads the configuration, wires the adapters and runs the driver.
func Execute(ctx context.Context, opts RunOptions) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = config.DefaultFile
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	logger := logging.NewWithWriter(opts.Stderr, logging.ParseLevel(cfg.LogLevel))
	metrics := observability.NewMetrics()

	if tui.IsTerminal(opts.Stdout) {
		tui.PrintBanner(opts.Stdout, string(opts.Source))
	}

	vendor, closeVendor, err := NewVendor(ctx, cfg, logger, metrics)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeVendor(); err != nil {
			logger.Warn("failed to close translation cache", "err", err)
		}
	}()

	driverOpts := []syncer.Option{
		syncer.WithLogger(logger),
		syncer.WithMetrics(metrics),
		syncer.WithConfig(syncer.Config{
			Languages:     cfg.Transifex.Languages,
			ScriptFields:  cfg.ScriptFields,
			ScriptKinds:   cfg.ScriptKinds,
			DatasetKinds:  cfg.DatasetKinds,
			DatasetSource: domain.KindAgent,
		}),
	}
	if opts.Source == domain.SourceEditor {
		driverOpts = append(driverOpts, syncer.WithSource(NewSource(cfg, logger)))
	}
	if vendor != nil {
		driverOpts = append(driverOpts, syncer.WithVendor(vendor))
	}

	driver := syncer.New(file.New(cfg.SourceDir), driverOpts...)
	report, runErr := driver.Run(ctx, opts.Source)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("failed to write metrics", "path", cfg.MetricsFile, "err", err)
		}
	}
	if runErr != nil {
		return fmt.Errorf("sync failed: %w", runErr)
	}

	tui.PrintSummary(opts.Stdout, report)
	return nil
}
