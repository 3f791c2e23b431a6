package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/staking-reward-ledger/cmd/staking-reward-ledger/cli"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("failed to load .env file")
	}
	// loggers taken from a context without one fall back to the global logger
	zerolog.DefaultContextLogger = &log.Logger
}

func main() {
	if err := cli.Setup(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
