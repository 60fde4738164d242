package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"forumapi/internal/config"
	"forumapi/internal/logger"
	"forumapi/internal/router"
	"forumapi/internal/setup"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to setup dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Storage.Cleanup()

	if cfg.Public.MigrationsPath != "" {
		if err := deps.Storage.Migrate(cfg.Public.MigrationsPath); err != nil {
			logger.Log.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	r := router.New(deps)

	addr := fmt.Sprintf(":%d", cfg.Public.Port)
	logger.Log.Info("server started", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
