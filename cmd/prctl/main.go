// Command prctl inspects and repairs the personal record ledger: it rebuilds
// scopes, verifies record chains, prints records and progression suggestions.
package main

import (
	"os"
)

// version is set via ldflags during build
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
