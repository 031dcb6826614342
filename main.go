package main

import (
	"os"

	"github.com/hivebudget/backend/internal/cli"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("hivebudget")
		os.Exit(1)
	}
}
