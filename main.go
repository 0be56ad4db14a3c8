// Package main is the entry point for the greeter command.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/savantbuild/greeter/config"
	"github.com/savantbuild/greeter/datamodel"
	"github.com/savantbuild/greeter/greeter"
	"github.com/savantbuild/greeter/logger"
)

func main() {
	configFile := flag.String("config", "", "Path to an optional YAML configuration file")
	verbosity := flag.Int("verbosity", -1, "Logging verbosity level (0=errors only, 1=warnings, 2=info, 3=debug); overrides config")
	flag.Parse()

	cfg := config.Default()
	var loadErr error
	if *configFile != "" {
		cfg, loadErr = config.LoadConfig(*configFile)
	}

	level := logger.LevelFromVerbosity(config.DefaultVerbosity)
	switch {
	case *verbosity >= 0:
		level = logger.LevelFromVerbosity(*verbosity)
	case loadErr == nil:
		level = logger.LevelFromVerbosity(*cfg.Logging.Verbosity)
	}
	logger.Init(level)

	if loadErr != nil {
		logger.Error("Failed to load configuration", "file", *configFile, "error", loadErr)
		fmt.Fprintf(os.Stderr, "Error loading configuration from %s: %v\n", *configFile, loadErr)
		os.Exit(1)
	}
	if *configFile != "" {
		logger.Info("Configuration loaded successfully", "file", *configFile)
	}

	if err := run(cfg, os.Stdout); err != nil {
		logger.Error("Greeting failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run issues the configured number of greetings to out, stopping at the
// first failure.
func run(cfg *datamodel.Config, out io.Writer) error {
	g := greeter.NewWithWriter(out)
	for i := 0; i < cfg.Greeting.Repeat; i++ {
		logger.Debug("Issuing greeting", "iteration", i+1, "of", cfg.Greeting.Repeat)
		if err := g.RunGreeting(); err != nil {
			return fmt.Errorf("greeting %d of %d: %w", i+1, cfg.Greeting.Repeat, err)
		}
	}
	return nil
}
