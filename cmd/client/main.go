package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/yobo-blog/internal/adapter"
	"github.com/MKhiriev/yobo-blog/internal/client"
	"github.com/MKhiriev/yobo-blog/internal/config"
	"github.com/MKhiriev/yobo-blog/internal/logger"
)

func main() {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, client.Usage)
		os.Exit(2)
	}

	log := logger.NewConsoleLogger("yobo-client", cfg.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(serverAdapter, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrUnknownCommand) {
			fmt.Fprintln(os.Stderr, client.Usage)
			stop()
			os.Exit(2)
		}
		stop()
		os.Exit(1)
	}
}
