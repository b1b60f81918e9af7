package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"ignite/config"
	deliverycontext "ignite/internal/delivery/context"
	"ignite/internal/domain/constants"
	"ignite/internal/domain/service"
	"ignite/internal/infra/ledger"
	logs "ignite/internal/infra/log"
	"ignite/internal/infra/metrics"
	"ignite/internal/infra/persistence/postgres"
	"ignite/internal/infra/pubsub"
	"ignite/internal/infra/push"
	"ignite/internal/usecase"
	"ignite/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported subcommands:
// - publish: Publish a reminder tick to Pub/Sub for the worker
// - run:     Run one reminder pass in this process and print the report

const defaultRunTimeout = 5 * time.Minute

func main() {
	publishCmd := flag.NewFlagSet("publish", flag.ExitOnError)
	publishSource := publishCmd.String("source", constants.TickSourceCLI, "Source recorded on the tick event")

	runCmd := flag.NewFlagSet("run", flag.ExitOnError)
	runTimeout := runCmd.Duration("timeout", defaultRunTimeout, "Upper bound for the reminder pass")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "publish":
		_ = publishCmd.Parse(os.Args[2:])
		err = runPublish(*publishSource)
	case "run":
		_ = runCmd.Parse(os.Args[2:])
		err = runOnce(*runTimeout)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Reminder tick tool

Usage:
  tick <command> [options]

Commands:
  publish   Publish a reminder tick event for the worker
  run       Run one reminder pass in-process and print the report

Examples:
  tick publish -source=scheduler
  tick run -timeout=2m`)
}

func runPublish(source string) error {
	var publisher service.EventPublisher
	var logger *slog.Logger

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			pubsub.NewEventPublisher,
		),
		fx.Populate(&publisher, &logger),
	)

	return withApp(app, func(ctx context.Context) error {
		event := &service.ReminderTickEvent{
			RequestID:   uuid.New().String(),
			RequestedAt: time.Now().UTC(),
			Source:      source,
		}

		if err := publisher.PublishReminderTick(ctx, event); err != nil {
			return errors.Wrap(err, "publish reminder tick")
		}

		logger.Info("Reminder tick published",
			slog.String("request_id", event.RequestID),
			slog.String("source", event.Source),
		)

		return nil
	})
}

func runOnce(timeout time.Duration) error {
	var (
		reminderUC usecase.ReminderUsecase
		logger     *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewSubscriberRepository,
			postgres.NewWorkoutRepository,
			metrics.NewRegistry,
			metrics.NewFromConfig,
			func(m *metrics.Manager) service.ReminderMetrics { return m },
			push.New,
			ledger.New,
			impl.NewReminderService,
		),
		fx.Populate(&reminderUC, &logger),
	)

	return withApp(app, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		ctx, _ = deliverycontext.WithRun(ctx, logger, constants.TickSourceCLI)

		report, err := reminderUC.RunDailyReminders(ctx)
		if err != nil {
			return errors.Wrap(err, "reminder run")
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return errors.WithStack(encoder.Encode(report))
	})
}

// withApp starts app, runs fn and always stops app so OnStop hooks flush publishers and close pools.
func withApp(app *fx.App, fn func(ctx context.Context) error) error {
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build application")
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start application")
	}

	runErr := fn(context.Background())

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "stop application")
	}

	return runErr
}
