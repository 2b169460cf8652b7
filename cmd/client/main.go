package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/dkarpov/jobseekr/internal/client/cli"
	"github.com/dkarpov/jobseekr/internal/client/config"
	"github.com/dkarpov/jobseekr/internal/logging"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	for _, arg := range os.Args[1:] {
		if arg == "version" || arg == "-version" {
			fmt.Printf("jobseekr client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
			return
		}
	}

	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
