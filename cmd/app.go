// Package cmd implements the CLI application to operate the ledger.
package cmd

import (
	"flag"
	"os"

	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&demoCmd{}, "ledger")
	c.Register(&runCmd{}, "ledger")
	c.Register(&feeCmd{}, "ledger")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// EnvDefaultCurrency overrides the default display currency.
const EnvDefaultCurrency = "TSY_CURRENCY"

var defaultCurrency = flag.String("currency", envOr(EnvDefaultCurrency, "USD"), "ISO currency code used to display amounts")
var plain = flag.Bool("plain", false, "print markdown reports without terminal styling")

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
