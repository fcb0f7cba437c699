// Package main provides the flexadapt CLI. The root command runs one user
// entity through adaptation, validation and persistence.
package main

import (
	"os"

	"github.com/flexible-adapter/adapters/internal/logger"
)

func main() {
	err := rootCommand().Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
