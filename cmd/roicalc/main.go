// Command roicalc evaluates a rental property purchase from the command line.
package main

import (
	"os"

	"propcalc/internal/logger"
)

func main() {
	logger.Init("production", "warn")
	defer logger.Sync()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
