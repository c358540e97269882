// Command textstat analyses natural-language text from the command line,
// an interactive terminal UI, or as an MCP tool server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/textstat/internal/adapters/driven/config/file"
	"github.com/custodia-labs/textstat/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/textstat/internal/adapters/driven/stemmer/snowball"
	"github.com/custodia-labs/textstat/internal/adapters/driving/cli"
	"github.com/custodia-labs/textstat/internal/core/ports/driven"
	"github.com/custodia-labs/textstat/internal/core/services"
	"github.com/custodia-labs/textstat/internal/logger"
	"github.com/custodia-labs/textstat/internal/normalisers"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// buildServices wires the core services. An unusable config directory
// degrades to in-memory settings so analysis still works.
func buildServices(configDir string) (*cli.Services, error) {
	var store driven.ConfigStore
	fileStore, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("Config unavailable, settings will not be saved: %v", err)
		store = memory.NewConfigStore(nil)
	} else {
		store = fileStore
	}

	settings := services.NewSettingsService(store)
	analyzer := services.NewAnalyzerService(settings, normalisers.NewDefaultRegistry(), snowball.New())

	return &cli.Services{
		Analyzer: analyzer,
		Settings: settings,
	}, nil
}
