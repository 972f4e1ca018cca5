package main

import (
	"flag"

	"github.com/danmuck/nibblekit/internal/observability"
	"github.com/danmuck/nibblekit/internal/server"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "cmd/nibbled/config.toml", "path to nibbled config")
	flag.Parse()

	observability.InitLogger("nibbled")
	cfg, err := loadServerConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load nibbled config")
	}
	log.Info().Str("path", *configPath).Msg("loaded nibbled config")

	srv := server.New(cfg)
	if err := srv.Serve(); err != nil {
		log.Fatal().Err(err).Msg("nibbled stopped")
	}
}
