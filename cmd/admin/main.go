package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"mindful/media-admin/internal/client"
	"mindful/media-admin/internal/config"
	"mindful/media-admin/internal/domain"
	"mindful/media-admin/internal/manager"
	"mindful/media-admin/internal/ui"
)

func main() {
	configPath := flag.String("config", ".", "directory containing config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so diagnostics go to a file.
	logger, err := fileLogger(cfg.Admin.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	api, err := client.NewClient(cfg.Admin.APIBase)
	if err != nil {
		fmt.Fprintf(os.Stderr, "api base: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if cfg.Admin.Email != "" {
		if err := api.Login(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			fmt.Fprintf(os.Stderr, "login: %v\n", err)
			os.Exit(1)
		}
		logger.Info("authenticated", zap.String("email", cfg.Admin.Email))
	} else {
		logger.Warn("no admin credentials configured; mutations will be rejected")
	}

	notices := ui.NewNoticeLog()
	exercises := manager.New(api.Exercises(), domain.StageExercise, "exercise", notices, logger.Named("exercises"))
	music := manager.New(api.Music(), domain.StageMusic, "music", notices, logger.Named("music"))

	opts := ui.Options{
		Context:   ctx,
		Client:    api,
		Exercises: exercises,
		Music:     music,
	}
	if err := ui.Run(opts, notices); err != nil {
		logger.Error("console exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "console: %v\n", err)
		os.Exit(1)
	}
}

// fileLogger builds a production zap logger writing to the given path.
func fileLogger(path string) (*zap.Logger, error) {
	if path == "" {
		path = "admin.log"
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
