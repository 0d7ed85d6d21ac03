package main

import (
	"context"
	"flag"
	"os"

	"github.com/Temutjin2k/fitness-tracker/config"
	"github.com/Temutjin2k/fitness-tracker/internal/app"
	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
)

var (
	helpFlag   = flag.Bool("help", false, "Show help message")
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file (optional)")
)

func main() {
	flag.Parse()
	if *helpFlag {
		config.PrintHelp()
		return
	}

	ctx := context.Background()
	log := logger.InitLogger("tracker", logger.LevelInfo)

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Error(ctx, "failed to configure application", err)
		os.Exit(1)
	}

	log = logger.InitLogger(cfg.Mode.String(), cfg.Log.Level)

	// Printing configuration
	config.PrintConfig(ctx, cfg, log)

	// Creating application
	application, err := app.NewApplication(ctx, *cfg, log)
	if err != nil {
		log.Error(ctx, "failed to init application", err)
		os.Exit(1)
	}

	// Running the application
	if err = application.Run(ctx); err != nil {
		log.Error(ctx, "failed to run application", err)
		os.Exit(1)
	}
}
