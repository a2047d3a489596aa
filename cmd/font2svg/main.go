// Package main provides the entry point for the font2svg CLI.
package main

import (
	"os"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/font2svg/internal/cli"
)

func main() {
	log := logger.NewConsoleLogger(os.Stderr)

	app := cli.New(log, os.Stdout)
	if err := app.Execute(); err != nil {
		if !cli.Reported(err) {
			log.Errorf("Error: %v", err)
		}

		os.Exit(cli.ExitCode(err))
	}
}
