// Command countries is a terminal explorer for the REST Countries listing.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/countries-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/countries-cli/internal/adapters/driven/restcountries"
	"github.com/custodia-labs/countries-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/countries-cli/internal/core/ports/driven"
	"github.com/custodia-labs/countries-cli/internal/core/services"
	"github.com/custodia-labs/countries-cli/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version string

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, cfg := loadSettings("")
	logger.SetVerbose(cfg.verbose)

	client := restcountries.NewClient(restcountries.Config{
		URL:       cfg.apiURL,
		UserAgent: restcountries.DefaultUserAgent + "/" + versionOrDev(),
	})
	logger.Debug("Country source: %s", client.URL())

	cli.SetVersion(version)
	if store != nil {
		cli.SetConfigStore(store)
	}
	cli.SetCountryService(services.NewCountryService(client))

	return cli.Execute(ctx)
}

// settings holds the configuration values main wires into adapters.
type settings struct {
	apiURL  string
	verbose bool
}

// loadSettings opens the config store in dir (the default location when
// empty). If the store cannot be opened the failure is reported and the
// defaults are used, so only the config command depends on the file.
func loadSettings(dir string) (*file.ConfigStore, settings) {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		err = fmt.Errorf("loading config: %w", err)
		logger.Error("%v; using defaults", err)
		cli.SetConfigError(err)
		return nil, settings{}
	}

	return store, settings{
		apiURL:  store.GetString(driven.ConfigKeyAPIURL),
		verbose: store.GetBool(driven.ConfigKeyVerbose),
	}
}

func versionOrDev() string {
	if version == "" {
		return "dev"
	}
	return version
}
