package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/werewolves-night/onenight/internal/api"
	"github.com/werewolves-night/onenight/internal/config"
	"github.com/werewolves-night/onenight/internal/store"
	"github.com/werewolves-night/onenight/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	rooms := store.NewRoomStore(nil)

	mux := http.NewServeMux()
	mux.Handle("/ws", ws.NewHandler(rooms))
	api.NewHandler(rooms, cfg.PublicURL).RegisterRoutes(mux)
	mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))

	log.Info().Str("addr", cfg.Addr).Msg("server listening")
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
