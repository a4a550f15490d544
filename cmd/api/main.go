package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	_ "address-resolver/docs"
	"address-resolver/internal/config"
	"address-resolver/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

//	@title			Address Resolver API
//	@version		1.0
//	@description	Fuzzy street and address lookup scoped by suburb or town.
//	@BasePath		/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logging.Setup(config.LogLevel, config.LogFormat)
	gin.SetMode(config.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r, closeRepo, err := newRouter(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open dataset source")
	}
	defer closeRepo()

	srv := &http.Server{
		Addr:    config.ServerAddress,
		Handler: r,
	}

	go func() {
		log.Info().Str("address", config.ServerAddress).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	stop()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
