package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"spendlens/internal/cli"
	"spendlens/internal/events"
	"spendlens/internal/export"
	"spendlens/internal/log"
	"spendlens/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentWorker)
	cfg := cli.LoadAndValidateConfig(logger)

	logger.Info("Starting spendlens-worker")

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the mirror worker")
		os.Exit(1)
	}
	if cfg.DataBackend != "sqlite" {
		logger.Error("Mirror worker needs the sqlite backend to re-read records", "backend", cfg.DataBackend)
		os.Exit(1)
	}

	repo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
	defer repo.Close()

	sink, err := newSink(cfg.ExportBackend, cfg.ExportJSONLPath, logger)
	if err != nil {
		logger.Error("Failed to initialize export sink", "error", err, "backend", cfg.ExportBackend)
		os.Exit(1)
	}
	defer sink.Close()

	w := worker.NewMirrorWorker(repo, sink)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return events.ConsumeWithReconnect(gctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue,
			func(msg *events.ExpenseEvent) error {
				return w.HandleEvent(gctx, msg)
			})
	})

	logger.Info("Mirror worker running",
		"exchange", cfg.AMQPExchange,
		"queue", cfg.AMQPQueue,
		"export_backend", cfg.ExportBackend)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker stopped gracefully")
}

func newSink(backend, jsonlPath string, logger *log.Logger) (export.Sink, error) {
	switch backend {
	case "sheets":
		return export.NewSheetsSinkFromEnv(context.Background())
	default:
		logger.Info("Using JSONL export sink", "path", jsonlPath)
		return export.NewJSONLSink(jsonlPath)
	}
}
