package main

import (
	"fmt"
	"os"
	"sync"

	"aiswe/internal/config"
	"aiswe/internal/errors"
	"aiswe/internal/logging"
	"aiswe/internal/query"
)

var (
	engineOnce   sync.Once
	sharedEngine *query.Engine
	engineErr    error
)

// getEngine returns a shared query engine instance.
// The engine is lazily initialized on first use.
func getEngine(logger *logging.Logger) (*query.Engine, error) {
	engineOnce.Do(func() {
		root, err := os.Getwd()
		if err != nil {
			engineErr = fmt.Errorf("failed to resolve working directory: %w", err)
			return
		}

		cfg, err := config.LoadConfig(root)
		if err != nil {
			logger.Warn("Failed to load config, using defaults", map[string]interface{}{
				"error": err.Error(),
			})
			cfg = config.DefaultConfig()
		}

		// CLI flag beats config and env.
		if catalogFlag != "" {
			cfg.CatalogPath = catalogFlag
		}

		engine, err := query.NewEngine(cfg, logger)
		if err != nil {
			engineErr = fmt.Errorf("failed to create engine: %w", err)
			return
		}

		sharedEngine = engine
	})

	return sharedEngine, engineErr
}

// mustGetEngine returns the shared query engine or exits on error.
func mustGetEngine(logger *logging.Logger) *query.Engine {
	engine, err := getEngine(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing engine: %v\n", err)
		os.Exit(1)
	}
	return engine
}

// newLogger creates a logger matching the output format.
func newLogger(format string) *logging.Logger {
	logFormat := logging.HumanFormat
	if format == "json" {
		logFormat = logging.JSONFormat
	}
	return logging.NewLogger(logging.Config{
		Format: logFormat,
		Level:  logging.InfoLevel,
	})
}

// exitWithError reports a query failure and exits. User errors (unknown
// identifiers, dangling references) exit 2; everything else exits 1.
func exitWithError(action string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", action, err)
	if errors.IsUserError(err) {
		os.Exit(2)
	}
	os.Exit(1)
}
