package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/papapumpkin/astrolabe/internal/batch"
	"github.com/papapumpkin/astrolabe/internal/config"
	"github.com/papapumpkin/astrolabe/internal/logging"
	"github.com/papapumpkin/astrolabe/internal/natal"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Compute every chart in a TOML or YAML batch file",
	Long: `Reads chart requests from FILE (.toml, .yaml or .yml) and writes one JSON
line per chart, in file order. With --watch, the batch reruns whenever FILE
changes until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringP("out", "o", "", "append JSON lines to this file instead of stdout")
	batchCmd.Flags().Int("workers", batch.DefaultWorkers, "charts computed concurrently")
	batchCmd.Flags().BoolP("watch", "w", false, "rerun when the batch file changes")
	batchCmd.Flags().String("log", "", "also write JSON logs to this file")
	_ = viper.BindPFlag("workers", batchCmd.Flags().Lookup("workers"))
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	path := args[0]

	em := batch.NewEmitter(cmd.OutOrStdout())
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if em, err = batch.OpenEmitter(out); err != nil {
			return err
		}
	}
	defer em.Close()

	log := logger
	if logPath, _ := cmd.Flags().GetString("log"); logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("batch: open log %s: %w", logPath, err)
		}
		defer f.Close()
		fileLog := logging.NewWriter(f, cfg.Verbose)
		log = zap.New(zapcore.NewTee(logger.Core(), fileLog.Core()))
		defer func() { _ = log.Sync() }()
	}

	runner := batch.NewRunner(em,
		batch.WithWorkers(cfg.Workers),
		batch.WithLogger(log),
		batch.WithFallback(natal.Input{
			TZOffset:    cfg.TZOffset,
			Latitude:    cfg.Latitude,
			Longitude:   cfg.Longitude,
			HouseSystem: cfg.System(),
		}),
		batch.WithChartOptions(chartOptions(cfg)...),
	)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := runBatchOnce(ctx, log, runner, path); err != nil {
		return err
	}
	if watch, _ := cmd.Flags().GetBool("watch"); !watch {
		return nil
	}
	return watchBatch(ctx, log, runner, path)
}

func runBatchOnce(ctx context.Context, logger *zap.Logger, runner *batch.Runner, path string) error {
	f, err := batch.Parse(path)
	if err != nil {
		return err
	}
	sum, err := runner.Run(ctx, f)
	if err != nil {
		return err
	}
	logger.Info("batch complete",
		zap.String("run", sum.RunID),
		zap.Int("charts", sum.Total),
		zap.Int("failed", sum.Failed))
	return nil
}

func watchBatch(ctx context.Context, logger *zap.Logger, runner *batch.Runner, path string) error {
	w, err := batch.NewWatcher(path, logger)
	if err != nil {
		return fmt.Errorf("batch: create watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("batch: watch %s: %w", path, err)
	}
	defer w.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case change := <-w.Changes:
			if change.Kind == batch.ChangeRemoved {
				logger.Warn("batch file removed; waiting for it to return", zap.String("file", change.File))
				continue
			}
			// A broken edit must not end the watch.
			if err := runBatchOnce(ctx, logger, runner, path); err != nil && ctx.Err() == nil {
				logger.Error("batch rerun failed", zap.Error(err))
			}
		}
	}
}
