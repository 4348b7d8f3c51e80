package main

import (
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/config"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/models"
	"github.com/vishaal-oss/Airplane-Reservation-System/temporal-worker/internal/activities"
	"github.com/vishaal-oss/Airplane-Reservation-System/temporal-worker/internal/workflows"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	tlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
)

const defaultTemporalHost = "localhost:7233"

func main() {
	taskQueue := pflag.String("task-queue", "", "Temporal task queue (overrides TASK_QUEUE)")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *taskQueue != "" {
		cfg.TaskQueue = *taskQueue
	}
	if cfg.TemporalHost == "" {
		cfg.TemporalHost = defaultTemporalHost
	}

	logger := cfg.Logger(os.Stderr)
	slog.SetDefault(logger)

	logger.Info("connecting to Temporal", "host", cfg.TemporalHost)
	c, err := client.Dial(client.Options{
		HostPort: cfg.TemporalHost,
		Logger:   tlog.NewStructuredLogger(logger),
	})
	if err != nil {
		logger.Error("failed to connect to Temporal", "error", err)
		os.Exit(1)
	}
	defer c.Close()

	w := worker.New(c, cfg.TaskQueue, worker.Options{})

	w.RegisterWorkflowWithOptions(workflows.ConfirmationWorkflow, workflow.RegisterOptions{
		Name: models.ConfirmationWorkflowName,
	})

	acts := activities.NewActivities(activities.LogSender{Logger: logger})
	w.RegisterActivityWithOptions(acts.SendConfirmation, activity.RegisterOptions{
		Name: models.SendConfirmationActivity,
	})

	logger.Info("starting Temporal worker", "taskQueue", cfg.TaskQueue)
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("worker failed", "error", err)
		os.Exit(1)
	}
}
