// Package cmd implements the fv terminal client.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"folioview/api"
	"folioview/auth"
	"folioview/config"
)

// Commands returns every fv subcommand, in help order.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&portfoliosCmd{},
		&dashboardCmd{},
		&holdingsCmd{},
		&chartCmd{},
		&transactionsCmd{},
		&addCmd{},
		&importCmd{},
		&deleteTxCmd{},
		&deletePortfolioCmd{},
		&returnsCmd{},
		&volatilityCmd{},
		&tickerCmd{},
		&allocationCmd{},
		&reportCmd{},
		&assistCmd{},
		&loginCmd{},
		&topicCmd{},
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var backendURL = flag.String("backend-url", "", "backend base URL (defaults to FOLIOVIEW_BACKEND_URL)")
var configFile = flag.String("config", "", "settings file (defaults to FOLIOVIEW_CONFIG)")
var currencyFlag = flag.String("currency", "", "display currency code (defaults to the settings file, then EUR)")

// Settings loads the user settings file once per invocation.
func Settings() (*config.Settings, error) {
	path := *configFile
	if path == "" {
		path = config.Path()
	}
	return config.Load(path)
}

// NewClient builds the API client with the saved credentials attached.
func NewClient() (*api.Client, error) {
	base := *backendURL
	if base == "" {
		base = config.BackendURL()
	}
	oauthCfg, _ := auth.ConfigFromEnv() // nil config just disables refresh
	source := auth.NewSource(auth.Store{Path: config.TokenFile()}, oauthCfg)
	return api.New(base, source)
}

// Currency resolves the display currency from flag, then settings.
func Currency(s *config.Settings) string {
	if *currencyFlag != "" {
		return *currencyFlag
	}
	if s != nil && s.Currency != "" {
		return s.Currency
	}
	return "EUR"
}

// Portfolio resolves a -portfolio flag against the settings default.
func Portfolio(flagValue string, s *config.Settings) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if s != nil && s.DefaultPortfolio != "" {
		return s.DefaultPortfolio, nil
	}
	return "", fmt.Errorf("no portfolio selected: pass -portfolio or set default_portfolio in %s", config.Path())
}

// fail prints the error and maps it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
