package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/dromero87/superheroes-cli/internal/buildinfo"
	"github.com/dromero87/superheroes-cli/internal/client/cli"
	"github.com/dromero87/superheroes-cli/internal/client/config"
	"github.com/dromero87/superheroes-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}
	logger, err := logging.NewLogger(level)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = logger.Sync() }()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
