// Command triscore ranks countries by the product of three datasets.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/custodia-labs/triscore/internal/adapters/driven/config/env"
	"github.com/custodia-labs/triscore/internal/adapters/driven/config/file"
	"github.com/custodia-labs/triscore/internal/adapters/driven/frames"
	"github.com/custodia-labs/triscore/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/triscore/internal/adapters/driven/validation"
	"github.com/custodia-labs/triscore/internal/adapters/driving/cli"
	"github.com/custodia-labs/triscore/internal/connectors/remote"
	"github.com/custodia-labs/triscore/internal/core/services"
	"github.com/custodia-labs/triscore/internal/decoders"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx, newServices); err != nil {
		stop()
		os.Exit(1)
	}
}

// newServices wires the adapters into the core services.
func newServices(configPath string) (*cli.Services, error) {
	fileStore, err := file.NewConfigStore(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	configStore, err := env.NewOverlay(fileStore)
	if err != nil {
		return nil, err
	}

	settingsService := services.NewSettingsService(configStore, validation.NewSettingsValidator())
	settings, err := settingsService.Get()
	if err != nil {
		return nil, err
	}

	registry := decoders.NewRegistry()
	decoders.RegisterDefaults(registry)

	analyzer := services.NewAnalyzerService(
		settingsService,
		remote.NewFetcher(settings.HTTP),
		registry,
		frames.New(),
		memory.NewExclusionStore(),
	)

	return &cli.Services{
		Analyzer: analyzer,
		Settings: settingsService,
	}, nil
}
