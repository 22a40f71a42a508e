// Command alerty is the terminal front-end of the Alerty client. Every
// command goes through the same session, cache and preference layers the
// mobile screens use.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"alerty/config"
	deliverycontext "alerty/internal/delivery/context"
	"alerty/internal/delivery/hooks"
	"alerty/internal/domain/lifecycle"
	"alerty/internal/errors"
	"alerty/internal/infra/api"
	"alerty/internal/infra/httpclient"
	logs "alerty/internal/infra/log"
	"alerty/internal/infra/prefs"
	"alerty/internal/infra/securestore"
	"alerty/internal/infra/session"
	"alerty/internal/query"
	"alerty/internal/usecase"
	"alerty/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, name string, args []string) error {
	cmd, ok := commands[name]
	if !ok {
		printUsage()

		return errors.Errorf("unknown command %q", name)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	runCmd := cmd.setup(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return errors.Wrapf(err, "failed to parse %s flags", name)
	}

	var c cli
	app := fx.New(
		fx.NopLogger,
		injectInfra(),
		injectStorage(),
		injectClient(),
		injectUsecase(),
		fx.Populate(&c.session, &c.settings, &c.hooks, &c.logger),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build client")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start client")
	}
	defer func() {
		// Preference writes are flushed by the store's stop hook.
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			c.logger.Warn("Failed to stop client", slog.Any("error", err))
		}
	}()

	// Every request of one command shares a request ID.
	requestID := deliverycontext.NewRequestID()
	c.out = os.Stdout
	c.logger = c.logger.With(
		slog.String("command", name),
		slog.String("request_id", requestID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)

	return runCmd(deliverycontext.WithLogger(ctx, c.logger), &c, fs.Args())
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectStorage() fx.Option {
	return fx.Options(
		securestore.Module,
		session.Module,
		prefs.Module,
	)
}

func injectClient() fx.Option {
	return fx.Options(
		httpclient.Module,
		api.Module,
		query.Module,
		hooks.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			func(h *hooks.Hooks) usecase.AuthHooks { return h },
			func(h *hooks.Hooks) usecase.DeviceHooks { return h },
			impl.NewSessionService,
			impl.NewNotificationSettingsService,
		),
	)
}

func printUsage() {
	fmt.Println("Usage: alerty <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	for _, name := range commandOrder {
		fmt.Printf("  %-14s %s\n", name, commands[name].usage)
	}
	fmt.Println("")
	fmt.Println("Use 'alerty <command> -h' for more information about a command.")
}
